package util

import "github.com/kr/pretty"

// Pretty renders a value for human consumption (verbose CLI output, test
// failure dumps).
func Pretty(v interface{}) string {
	return pretty.Sprint(v)
}

func PrettyF(format string, vs ...interface{}) string {
	return pretty.Sprintf(format, vs...)
}
