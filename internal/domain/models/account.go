package models

// TokenList is the response of /account/tokens.
type TokenList struct {
	Total Int64          `json:"total"`
	Data  []TokenBalance `json:"data"`
}

type TokenBalance struct {
	TokenID         string   `json:"tokenId"`
	TokenName       string   `json:"tokenName"`
	TokenAbbr       string   `json:"tokenAbbr"`
	TokenDecimal    Int64    `json:"tokenDecimal"`
	TokenType       string   `json:"tokenType"`
	TokenLogo       string   `json:"tokenLogo,omitempty"`
	Balance         Quantity `json:"balance"`
	Amount          Quantity `json:"amount"`
	TokenPriceInUsd Quantity `json:"tokenPriceInUsd"`
	AmountInUsd     Quantity `json:"amountInUsd"`
	Vip             bool     `json:"vip"`
}

// AccountInfo is the subset of /account used by the dashboard.
type AccountInfo struct {
	Address               string    `json:"address"`
	Name                  string    `json:"name,omitempty"`
	Balance               Quantity  `json:"balance"`
	TotalTransactionCount Int64     `json:"totalTransactionCount"`
	TransactionsIn        Int64     `json:"transactions_in"`
	TransactionsOut       Int64     `json:"transactions_out"`
	DateCreated           Int64     `json:"date_created"`
	LatestOperationTime   Int64     `json:"latest_operation_time"`
	Activated             bool      `json:"activated"`
	Bandwidth             Bandwidth `json:"bandwidth"`
}

type Bandwidth struct {
	EnergyRemaining  Int64 `json:"energyRemaining"`
	EnergyLimit      Int64 `json:"energyLimit"`
	EnergyUsed       Int64 `json:"energyUsed"`
	NetRemaining     Int64 `json:"netRemaining"`
	NetLimit         Int64 `json:"netLimit"`
	FreeNetRemaining Int64 `json:"freeNetRemaining"`
	FreeNetLimit     Int64 `json:"freeNetLimit"`
}

// ResourceInfo is the response of /account/resourcev2.
type ResourceInfo struct {
	Total Int64                `json:"total"`
	Data  []ResourceDelegation `json:"data"`
}

type ResourceDelegation struct {
	Resource        Int64    `json:"resource"` // 0 bandwidth, 1 energy
	Balance         Quantity `json:"balance"`
	ResourceValue   Quantity `json:"resourceValue"`
	OwnerAddress    string   `json:"ownerAddress"`
	ReceiverAddress string   `json:"receiverAddress"`
	OperationTime   Int64    `json:"operationTime"`
	ExpireTime      Int64    `json:"expireTime,omitempty"`
}
