package domain

const (
	EntryTypeConstructor = "constructor"
	EntryTypeFunction    = "function"

	// InitializerName is the function used in place of a constructor behind a proxy
	InitializerName = "initialize"
)

// AbiParameter is one entry of a constructor or function input list
type AbiParameter struct {
	Name         string `json:"name"`
	InternalType string `json:"internalType"`
	Type         string `json:"type"`
}

// AbiEntry is a member of a compiled contract's ABI array
type AbiEntry struct {
	Type   string         `json:"type"`
	Name   string         `json:"name,omitempty"`
	Inputs []AbiParameter `json:"inputs"`
}

// ContractABI is the parsed abi field of a Foundry artifact
type ContractABI struct {
	Entries []AbiEntry
}

// Constructor returns the constructor entry, or nil if the contract has none.
func (a *ContractABI) Constructor() *AbiEntry {
	if a == nil {
		return nil
	}
	for i := range a.Entries {
		if a.Entries[i].Type == EntryTypeConstructor {
			return &a.Entries[i]
		}
	}
	return nil
}

// Initializer returns the first function entry named exactly "initialize".
func (a *ContractABI) Initializer() *AbiEntry {
	if a == nil {
		return nil
	}
	for i := range a.Entries {
		if a.Entries[i].Type == EntryTypeFunction && a.Entries[i].Name == InitializerName {
			return &a.Entries[i]
		}
	}
	return nil
}

// ResolvedArguments holds the two parameter lists that end up in the
// generated deployer. HasInitializer distinguishes a contract without an
// initializer from one whose initializer takes no arguments.
type ResolvedArguments struct {
	Constructor    []AbiParameter
	Initializer    []AbiParameter
	HasInitializer bool
}
