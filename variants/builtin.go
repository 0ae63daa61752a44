package variants

import "github.com/zucenko/codemaze/model"

const DefaultName = "FEDevPacman-v5"

var builtin = []Variant{
	{
		Name:          "FEDevPacman-v1",
		Lines:         reactApp,
		Padding:       model.PAD_SOLID,
		Tokens:        dots,
		Hazards:       corners,
		CornerHazards: true,
	},
	{
		Name:          "FEDevPacman-v2",
		Lines:         reactApp,
		Padding:       model.PAD_OPEN_SPACES,
		Tokens:        dots,
		Hazards:       corners,
		CornerHazards: true,
	},
	{
		Name:        "FEDevPacman-v3",
		Lines:       reactAppTemplate,
		Padding:     model.PAD_OPEN_SPACES,
		Tokens:      practicesV3,
		Hazards:     smallBugs,
		HazardCount: 10,
	},
	{
		Name:        "FEDevPacman-v4",
		Lines:       reactAppTemplate,
		Padding:     model.PAD_OPEN_SPACES,
		Tokens:      practicesV4,
		Hazards:     smallBugs,
		HazardCount: 10,
	},
	{
		Name:        "FEDevPacman-v5",
		Lines:       reactAppSplit,
		Padding:     model.PAD_OPEN_SPACES,
		Tokens:      practices,
		Hazards:     bugs,
		HazardCount: 20,
	},
}

// Builtin returns the registry of the shipped mazes.
func Builtin() *Registry {
	return NewRegistry(DefaultName, builtin...)
}
