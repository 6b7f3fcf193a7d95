package sdk

// Intent is a caller-attached permission, like transfer.allow, that scopes
// what the contract may do with the caller's funds during this transaction.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender identifies who signed the transaction currently executing.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the execution environment snapshot for the current transaction.
type Env struct {
	ContractId    string
	ContractOwner Address
	TxId          string
	Index         int64
	OpIndex       int64
	BlockId       string
	BlockHeight   uint64
	Timestamp     string
	Sender        Sender
	Payer         Address
	Intents       []Intent
}

// ContractCallOptions lets a contract delegate scoped intents to a callee.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
