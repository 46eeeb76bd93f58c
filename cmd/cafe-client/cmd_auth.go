package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cafe-client/internal/domain"
)

var (
	signinEmail    string
	signinPassword string

	signupName     string
	signupEmail    string
	signupPhone    string
	signupPassword string
)

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := app.api.Signin(cmd.Context(), signinEmail, signinPassword)
		if err != nil {
			return err
		}
		app.sess.SetCredentials(domain.User{
			UserID: data.UserID, Name: data.Name, Email: data.Email,
			Phone: data.Phone, Role: data.Role,
		}, data.Token)
		fmt.Printf("Welcome back, %s!\n", data.Name)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := app.api.Signup(cmd.Context(), domain.SignupRequest{
			Name: signupName, Email: signupEmail, Phone: signupPhone, Password: signupPassword,
		})
		if err != nil {
			return err
		}
		app.sess.SetCredentials(domain.User{
			UserID: data.UserID, Name: data.Name, Email: data.Email,
			Phone: data.Phone, Role: data.Role,
		}, data.Token)
		fmt.Printf("Account created. Welcome, %s!\n", data.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out (keeps the cart)",
	Run: func(cmd *cobra.Command, args []string) {
		app.sess.Logout()
		fmt.Println("Signed out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		u := app.sess.User()
		if u == nil {
			fmt.Println("Not signed in.")
			return
		}
		fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	},
}

func init() {
	signinCmd.Flags().StringVar(&signinEmail, "email", "", "account email")
	signinCmd.Flags().StringVar(&signinPassword, "password", "", "account password")
	_ = signinCmd.MarkFlagRequired("email")
	_ = signinCmd.MarkFlagRequired("password")

	signupCmd.Flags().StringVar(&signupName, "name", "", "full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupPhone, "phone", "", "mobile number (01XXXXXXXXX)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "account password")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("phone")
	_ = signupCmd.MarkFlagRequired("password")
}
