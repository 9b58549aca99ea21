package usecase

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
)

// collisionPrefix is prepended to constructor parameters that share a name
// with an initializer parameter
const collisionPrefix = "c_"

// ResolveArguments extracts the constructor and initializer parameter lists
// from an ABI. Both lists are fresh copies; the ABI is never modified.
func ResolveArguments(contractABI *domain.ContractABI) domain.ResolvedArguments {
	var resolved domain.ResolvedArguments

	constructor := contractABI.Constructor()
	initializer := contractABI.Initializer()

	if constructor != nil {
		resolved.Constructor = nameUnnamed(constructor.Inputs, "constructorArg")
	} else {
		resolved.Constructor = []domain.AbiParameter{}
	}

	if initializer != nil {
		resolved.HasInitializer = true
		resolved.Initializer = nameUnnamed(initializer.Inputs, "initArg")
		resolved.Constructor = disambiguate(resolved.Constructor, resolved.Initializer)
	}

	return resolved
}

// disambiguate renames constructor parameters whose name is also used by an
// initializer parameter, so the generated signature has no duplicate identifiers
func disambiguate(constructor, initializer []domain.AbiParameter) []domain.AbiParameter {
	initNames := lo.SliceToMap(initializer, func(p domain.AbiParameter) (string, struct{}) {
		return p.Name, struct{}{}
	})

	return lo.Map(constructor, func(p domain.AbiParameter, _ int) domain.AbiParameter {
		if _, clash := initNames[p.Name]; clash {
			p.Name = collisionPrefix + p.Name
		}
		return p
	})
}

// nameUnnamed copies a parameter list, giving unnamed parameters a positional name
func nameUnnamed(params []domain.AbiParameter, prefix string) []domain.AbiParameter {
	return lo.Map(params, func(p domain.AbiParameter, i int) domain.AbiParameter {
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s%d", prefix, i)
		}
		return p
	})
}
