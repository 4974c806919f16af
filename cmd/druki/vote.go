package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/identity"
	"github.com/tbourn/sejm-prints-backend/internal/repo"
	"github.com/tbourn/sejm-prints-backend/internal/services"
)

func newVoteCmd(a *app) *cobra.Command {
	var device string
	cmd := &cobra.Command{
		Use:   "vote <number> like|dislike|remove",
		Short: "Vote on a print as this machine's anonymous user",
		Long: `Record, change or withdraw a vote in the local database.

The vote is cast by the anonymous identity bound to --device, the same
identity the API resolves for an X-Device-ID header with that value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			userID, err := identity.NewKVProvider(repo.NewKVStore(db)).Resolve(ctx, device)
			if err != nil {
				return fmt.Errorf("resolving identity: %w", err)
			}
			pub, err := a.publisher()
			if err != nil {
				return err
			}
			defer func() { _ = pub.Close() }()
			svc := services.NewVoteService(db, a.cfg.Sejm.Term, pub)

			var res *services.VoteResult
			switch action := strings.ToLower(strings.TrimSpace(args[1])); action {
			case "remove":
				res, err = svc.Remove(ctx, userID, args[0])
			default:
				res, err = svc.Submit(ctx, userID, args[0], domain.VoteType(action))
			}
			if err != nil {
				return err
			}

			s := res.Stats
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: likes=%d dislikes=%d total=%d\n",
				res.Action, args[0], s.Likes, s.Dislikes, s.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", defaultDevice(), "device id the anonymous identity is bound to")
	return cmd
}

func defaultDevice() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return "cli:" + h
	}
	return "cli:local"
}
