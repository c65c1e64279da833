package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edgewave/hlsgate/token"
)

func signCmd() *cobra.Command {
	var (
		path   string
		ttl    time.Duration
		secret string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Mint a signed URL for a media path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if secret == "" {
				secret = os.Getenv("EDGE_SIGNING_SECRET")
			}
			if secret == "" {
				return errors.Errorf("signing secret required: set --secret or EDGE_SIGNING_SECRET")
			}

			exp := time.Now().Add(ttl).Unix()
			signer := token.NewSigner([]byte(secret))
			fmt.Fprintln(cmd.OutOrStdout(), signer.SignedURL(path, exp))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "/live/stream.m3u8", "request path to sign")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*time.Second, "validity window")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to EDGE_SIGNING_SECRET)")
	return cmd
}
