package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/pkg/render"
	"github.com/quadro-app/quadro/pkg/validation"
)

// Input validation happens here, at the presentation edge. The
// services trust these primitives and only enforce domain invariants.

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
	Name     string `json:"name" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var (
	signupEmail    string
	signupPassword string
	signupName     string
	signupCountry  string

	loginEmail    string
	loginPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := signupInput{Email: signupEmail, Password: signupPassword, Name: signupName, Country: signupCountry}
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := container.GetAuth().Signup(in.Email, in.Password, in.Name, in.Country)
		if err != nil {
			return err
		}
		if err := setActiveUser(u); err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, u)
		}
		render.User(os.Stdout, u)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := loginInput{Email: loginEmail, Password: loginPassword}
		if err := validation.Struct(in); err != nil {
			return err
		}
		u, err := container.GetAuth().Login(in.Email, in.Password)
		if err != nil {
			return err
		}
		if err := setActiveUser(u); err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, u)
		}
		render.User(os.Stdout, u)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := container.GetAuth().Logout(); err != nil {
			return err
		}
		return setActiveUser(nil)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := container.GetAuth().CurrentUser()
		if u == nil {
			return application.ErrNotAuthenticated
		}
		if jsonOut {
			return render.JSON(os.Stdout, u)
		}
		render.User(os.Stdout, u)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password (min 8 characters)")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name")
	signupCmd.Flags().StringVar(&signupCountry, "country", "", "Country")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("country")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
