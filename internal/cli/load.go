package cli

import (
	"fmt"

	"newsdesk-service/internal/ingest/adapters/file"
	"newsdesk-service/internal/ingest/core/domain"

	"github.com/spf13/cobra"
)

func newLoadCommand(st *state) *cobra.Command {
	load := &cobra.Command{
		Use:   "load",
		Short: "Replace a dataset from a file",
		Long: `Replace every stored record of one family with the contents of a file.

Examples:
  newsdesk load segments ./data/segments.jsonl
  newsdesk load audience ./data/audience.json`,
	}

	load.AddCommand(
		&cobra.Command{
			Use:   "segments <file>",
			Short: "Replace all segments and topics from a JSON lines file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				records, err := file.ReadSegmentsFile(args[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				return st.runLoad(cmd, func(b *backends) (domain.LoadResult, error) {
					return st.newLoader(b).LoadSegments(cmd.Context(), records)
				})
			},
		},
		&cobra.Command{
			Use:   "audience <file>",
			Short: "Replace all audience readings from a JSON object file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := file.ReadAudienceFile(args[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				return st.runLoad(cmd, func(b *backends) (domain.LoadResult, error) {
					return st.newLoader(b).LoadAudience(cmd.Context(), raw)
				})
			},
		},
	)
	return load
}

func (st *state) runLoad(cmd *cobra.Command, load func(b *backends) (domain.LoadResult, error)) error {
	b, err := st.openBackends(cmd.Context())
	if err != nil {
		return err
	}
	defer b.Close()

	res, err := load(b)
	if err != nil {
		return err
	}

	cmd.Printf("%s: load %s deleted %d, inserted %d\n", res.Family, res.LoadID, res.Deleted, res.Inserted)
	if res.TopicsInserted > 0 {
		cmd.Printf("%s: %d topics inserted\n", res.Family, res.TopicsInserted)
	}
	return nil
}
