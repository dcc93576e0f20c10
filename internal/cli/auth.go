package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/mtarp-portal/internal/model"
)

var errEndpointRequired = errors.New("--endpoint is required (or set MTARP_AUTH_ENDPOINT)")

func newLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Endpoint == "" {
				return errEndpointRequired
			}

			state, err := cfg.LoadState()
			if err != nil {
				return err
			}

			form := model.LoginForm{Username: user, Password: pass}
			state = controller.SubmitLogin(cmd.Context(), state, form, nil)
			return finish(cmd, state, showProfile)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Username")
	cmd.Flags().StringVarP(&pass, "pass", "p", "", "Password")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var user, email, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Endpoint == "" {
				return errEndpointRequired
			}

			state, err := cfg.LoadState()
			if err != nil {
				return err
			}

			form := model.RegisterForm{Username: user, Email: email, Password: pass}
			state = controller.SubmitRegistration(cmd.Context(), state, form, nil)
			return finish(cmd, state, showNothing)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&pass, "pass", "p", "", "Password (at least 6 characters)")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadState()
			if err != nil {
				return err
			}

			state = controller.Logout(state)
			return finish(cmd, state, showNothing)
		},
	}
}
