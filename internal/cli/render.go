package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasuya3/INT-YAMAE/decks"
	"github.com/kasuya3/INT-YAMAE/export"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		outDir   string
		width    int
		template string
	)

	cmd := &cobra.Command{
		Use:   "render [proposal|collaboration|improved]",
		Short: "Render PNG previews of a deck's slides",
		Long: "Render builds one deck (default: proposal) in memory and draws each slide\n" +
			"as slide_N.png. Nothing is written to the output directory. Slides loaded\n" +
			"from a template keep their text and geometry but lose shape colors.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: decks.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := decks.Proposal.Name
			if len(args) == 1 {
				name = args[0]
			}

			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if template == "" {
				template = s.cfg.Template
			}
			d, env, err := s.deckEnv(name, template)
			if err != nil {
				return err
			}
			doc, err := d.Build(env)
			if err != nil {
				s.out.Logf("[RENDER] %s failed: %v", name, err)
				return err
			}

			opts := export.RenderOptions{Width: s.cfg.RenderWidth, FontDirs: s.cfg.FontDirs}
			if width > 0 {
				opts.Width = width
			}
			paths, err := doc.RenderPreviews(outDir, opts)
			if err != nil {
				return err
			}
			s.out.Logf("[RENDER] %s: %d previews in %s", name, len(paths), outDir)

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "preview", "directory for slide_N.png files")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default: render_width from config)")
	cmd.Flags().StringVar(&template, "template", "", "template .pptx for decks that extend another deck")
	return cmd
}
