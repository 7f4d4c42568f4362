package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebgh/turingdeck/internal/locale"
)

// NewLangCommand creates the lang command: show or set the card art
// language.
func NewLangCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the card art language",
		Long: `Show the stored card art language, or set it to one of the game's
language codes (en, br, cns, cnt, cz, de, fr, gr, hu, it, jp, kr, nl,
pl, ru, sp, th, ua). Without a stored preference the system locale is
resolved and remembered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if len(args) == 1 {
				code := args[0]
				if !locale.Supported(code) {
					return fmt.Errorf("unsupported language %q", code)
				}
				if err := locale.SetPreference(rt.store, code); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "language: %s\n", code)
				return nil
			}

			userLocale := rt.cfg.Language
			if userLocale == "" {
				userLocale = systemLocale()
			}
			code, err := locale.Preference(rt.store, userLocale)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language: %s\n", code)
			return nil
		},
	}
}

// systemLocale reads the locale from the environment, trimming the
// charset suffix and mapping "en_US" style tags to BCP-47.
func systemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
