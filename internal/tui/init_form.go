package tui

import (
	"github.com/charmbracelet/huh"
)

// StylePresets are offered by the init form.
var StylePresets = []string{"red bold", "yellow bold", "bright-red", "fg:#d4a373 bold", "dimmed"}

// InitOptions are the answers collected by RunInitForm.
type InitOptions struct {
	Style  string
	Symbol string
	Format string
}

// RunInitFormFn is replaced in tests.
var RunInitFormFn = runInitForm

// RunInitForm asks for the java module style, symbol and config format,
// starting from opts.
func RunInitForm(opts InitOptions) (InitOptions, error) {
	return RunInitFormFn(opts)
}

func runInitForm(opts InitOptions) (InitOptions, error) {
	styleOptions := make([]huh.Option[string], 0, len(StylePresets))
	for _, p := range StylePresets {
		styleOptions = append(styleOptions, huh.NewOption(p, p))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Java segment style").
				Options(styleOptions...).
				Value(&opts.Style),
			huh.NewInput().
				Title("Symbol").
				Description("Printed before the version").
				Value(&opts.Symbol),
			huh.NewSelect[string]().
				Title("Config file format").
				Options(huh.NewOption("YAML", "yaml"), huh.NewOption("TOML", "toml")).
				Value(&opts.Format),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return opts, err
	}
	return opts, nil
}
