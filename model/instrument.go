package model

type Instrument struct {
	Bank      uint8
	Preset    uint8
	Transpose int8
	Pan       float32 // -1 .. 1
	Gain      float32 // dB
}
