package cmd

import (
	"context"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hubrl/hubrl"
	"github.com/hubrl/hubrl/internal/creds"
)

func runCheck(cmd *cobra.Command, args []string) error {
	image := viper.GetString("image")

	var nameOpts []name.Option
	if viper.GetBool("insecure") {
		nameOpts = append(nameOpts, name.Insecure)
	}

	ref, err := name.ParseReference(image, append([]name.Option{name.WithDefaultTag("latest")}, nameOpts...)...)
	if err != nil {
		return fmt.Errorf("invalid image ref %q: %w", image, err)
	}

	auth, err := creds.Resolve(creds.Source{
		Username:    viper.GetString("username"),
		Password:    viper.GetString("password"),
		UseKeychain: !viper.GetBool("no_keychain"),
	}, ref.Context().RegistryStr())
	if err != nil {
		return err
	}

	client, err := hubrl.New(
		hubrl.WithImage(image, nameOpts...),
		hubrl.WithTokenURL(viper.GetString("token_url")),
		hubrl.WithAuth(auth),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
	defer cancel()

	limit, err := client.Check(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), limit)
	return nil
}
