package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

func Ensure0xPrefix(str string) string {
	if !strings.HasPrefix(str, "0x") {
		return "0x" + str
	}
	return str
}

func IsValidEthereumAddress(address string) bool {
	return common.IsHexAddress(address)
}
