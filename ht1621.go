package segment

// HT1621 modes and commands.
const (
	ht1621ModeCommand   = 0b100
	ht1621ModeWrite     = 0b101
	ht1621SysDisable    = 0x00
	ht1621SysEnable     = 0x01
	ht1621LCDOff        = 0x02
	ht1621LCDOn         = 0x03
	ht1621RC256K        = 0x18
	ht1621BiasThird4Com = 0x29
	ht1621MaxAddr       = 32
)

// ht1621Init is the startup sequence: clock source, bias, system and display enable.
var ht1621Init = []byte{
	ht1621RC256K,
	ht1621BiasThird4Com,
	ht1621SysEnable,
	ht1621LCDOn,
}

var ht1621Shutdown = []byte{
	ht1621LCDOff,
	ht1621SysDisable,
}
