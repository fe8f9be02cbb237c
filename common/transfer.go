package common

var (
	fundPrefix    = []byte{0x01}
	prizePrefix   = []byte{0x02}
	reclaimPrefix = []byte{0x03}
	mintPrefix    = []byte{0x10}
	burnPrefix    = []byte{0x11}
)

// FundTransferDetails marks a transfer escrowing the prize of the referenced
// contest.
func FundTransferDetails(contestKey []byte) []byte {
	return append(fundPrefix, contestKey...)
}

// PrizeTransferDetails marks a transfer paying the contest prize out to the
// winner.
func PrizeTransferDetails(contestKey []byte) []byte {
	return append(prizePrefix, contestKey...)
}

// ReclaimTransferDetails marks a transfer returning escrowed funds to the
// contest creator.
func ReclaimTransferDetails(contestKey []byte) []byte {
	return append(reclaimPrefix, contestKey...)
}

// MintTransferDetails marks an emission transfer.
func MintTransferDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

// BurnTransferDetails marks a withdrawal transfer.
func BurnTransferDetails(txDetails []byte) []byte {
	return append(burnPrefix, txDetails...)
}
