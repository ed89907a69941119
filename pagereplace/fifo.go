package pagereplace

// FIFO evicts the page that has been resident longest. Frames are kept in
// load order, so the victim is always the front.
type FIFO struct{}

func NewFIFO() *FIFO {
	return &FIFO{}
}

func (*FIFO) Name() string {
	return "FIFO"
}

func (*FIFO) reset() {}

func (*FIFO) recordHit(*frameTable, int) {}

func (*FIFO) recordLoad(*frameTable, int) {}

func (*FIFO) victim(*frameTable, int) int {
	return 0
}
