package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kasuya3/INT-YAMAE/decks"
)

const buildAll = "all"

func newBuildCmd(flags *rootFlags) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "build [proposal|collaboration|improved|all]",
		Short: "Build a deck into the output directory",
		Long: "Build writes one deck (default: proposal). The collaboration deck is appended\n" +
			"to the proposal output, which must already exist unless --template names\n" +
			"another file. \"all\" builds every deck in dependency order.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(decks.Names(), buildAll),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := decks.Proposal.Name
			if len(args) == 1 {
				name = args[0]
			}

			names := []string{name}
			if name == buildAll {
				names = decks.Names()
			}

			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if template == "" {
				template = s.cfg.Template
			}
			for _, n := range names {
				if err := buildDeck(cmd, s, n, template); err != nil {
					s.out.Logf("[BUILD] %s failed: %v", n, err)
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "template .pptx for decks that extend another deck")
	return cmd
}

// buildDeck writes one deck and prints its completion message and slide
// count.
func buildDeck(cmd *cobra.Command, s *session, name, template string) error {
	d, env, err := s.deckEnv(name, template)
	if err != nil {
		return err
	}

	path, count, err := d.Write(env, s.cfg.OutputDir)
	if err != nil {
		return err
	}
	s.out.Logf("[BUILD] %s written to %s", d.Name, path)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, d.Message)
	fmt.Fprintf(out, "総スライド数: %d\n", count)
	return nil
}

// deckEnv looks up a deck and resolves its build inputs. A deck that
// extends another loads the given template, or else the base deck's output
// in the output directory.
func (s *session) deckEnv(name, template string) (*decks.Deck, decks.Env, error) {
	d, err := decks.Lookup(name)
	if err != nil {
		return nil, decks.Env{}, err
	}

	env := decks.Env{
		Options:  s.options(d.Title),
		AssetDir: s.cfg.AssetDir,
	}
	if d.Extends != "" {
		env.Template = template
		if env.Template == "" {
			base, err := decks.Lookup(d.Extends)
			if err != nil {
				return nil, decks.Env{}, err
			}
			env.Template = filepath.Join(s.cfg.OutputDir, base.FileName)
		}
	}
	return d, env, nil
}
