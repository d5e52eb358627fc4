package utils

import "fmt"

// Network identifies which Starknet network a feeder-gateway test fixture
// tree belongs to under clients/feeder/testdata.
type Network uint8

const (
	Mainnet Network = iota
	Sepolia
	Integration
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Sepolia:
		return "sepolia"
	case Integration:
		return "integration"
	default:
		return fmt.Sprintf("network(%d)", uint8(n))
	}
}
