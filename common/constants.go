package common

const (
	DefaultETHHDPath = "m/44'/60'/0'/0/0"
	USDCDecimals     = 6
)
