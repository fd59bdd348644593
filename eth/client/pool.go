package client

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/models"
)

// Pool holds one client per configured chain, keyed by chain id.
type Pool struct {
	clients map[int64]EthereumClient
}

func (p *Pool) Get(chainID int64) (EthereumClient, bool) {
	c, ok := p.clients[chainID]
	return c, ok
}

func (p *Pool) ValidateNetworks() {
	for _, c := range p.clients {
		c.ValidateNetwork()
	}
}

func NewPoolFromClients(clients ...EthereumClient) *Pool {
	p := &Pool{clients: make(map[int64]EthereumClient)}
	for _, c := range clients {
		p.clients[c.ChainID()] = c
	}
	return p
}

// NewPool dials the builder NFT chain and every source chain. A source chain
// that repeats the builder chain id reuses the builder client.
func NewPool(builderNFT models.EthereumConfig, sourceChains []models.ChainConfig) (*Pool, error) {
	chains := append([]models.ChainConfig{{
		ChainID:          builderNFT.ChainID,
		RPCURL:           builderNFT.RPCURL,
		RPCTimeoutMillis: builderNFT.RPCTimeoutMillis,
	}}, sourceChains...)

	p := &Pool{clients: make(map[int64]EthereumClient)}
	for _, chain := range chains {
		c, err := NewClient(chain)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", chain.ChainID, err)
		}
		if _, ok := p.clients[c.ChainID()]; ok {
			log.Debugln("[ETH]", "Skipping duplicate chain", chain.ChainID)
			continue
		}
		p.clients[c.ChainID()] = c
	}
	return p, nil
}
