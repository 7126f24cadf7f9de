package main

import (
	"context"                              // Deadline for the database work
	"errors"                               // Error inspection
	"fmt"                                  // Output
	"fragrance_finder/internal/config"     // Custom import path (Config)
	"fragrance_finder/internal/db"         // Custom import path (Database)
	"fragrance_finder/internal/domain"     // Importing domain models
	"fragrance_finder/internal/repository" // Custom import path (Repositories)
	"fragrance_finder/internal/service"    // Custom import path (Services)
	"fragrance_finder/internal/utils"      // Token issuer
	"io"                                   // Output writer
	"os"                                   // Arguments and stdin
	"strings"                              // Trimming
	"time"                                 // Timeout

	"github.com/sirupsen/logrus" // Logging
	"golang.org/x/term"          // No-echo password prompt
)

// readPassword is a test seam for term.ReadPassword
var readPassword = term.ReadPassword

// adminEnsurer creates or promotes an admin user
type adminEnsurer interface {
	EnsureAdmin(ctx context.Context, email, password, name string) (*domain.User, service.AdminOutcome, error)
}

const usage = `Usage: create-admin <email> [password] [name]

To create a new admin user:
  create-admin admin@example.com mypassword123 "Admin User"

To upgrade an existing user to admin:
  create-admin existing@example.com

When a new user is created and no password is given, it is read from the terminal.`

// Main entry point for admin creation
func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg := config.LoadConfig() // Load configuration
	config.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	gdb, err := db.Open(cfg.DSN(), db.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	auth := service.NewAuthService(
		repository.NewUserRepository(gdb),
		utils.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.JWTExpiresIn),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := run(ctx, auth, args, os.Stdout); err != nil {
		cancel()
		logrus.Fatalf("create-admin: %v", err)
	}
}

// run promotes or creates the admin named by args and reports the outcome on w
func run(ctx context.Context, admins adminEnsurer, args []string, w io.Writer) error {
	email := strings.TrimSpace(args[0])
	var password, name string
	if len(args) > 1 {
		password = args[1]
	}
	if len(args) > 2 {
		name = args[2]
	}

	user, outcome, err := admins.EnsureAdmin(ctx, email, password, name)
	if errors.Is(err, service.ErrPasswordRequired) {
		// New user: ask for the password without echo
		if password, err = promptPassword(w); err != nil {
			return err
		}
		user, outcome, err = admins.EnsureAdmin(ctx, email, password, name)
	}
	if err != nil {
		return err
	}

	switch outcome {
	case service.AdminUnchanged:
		fmt.Fprintf(w, "User %s is already an admin\n", user.Email)
	case service.AdminPromoted:
		fmt.Fprintf(w, "Upgraded %s to admin\n", user.Email)
	case service.AdminCreated:
		fmt.Fprintf(w, "Created admin user: %s\n", user.Email)
		if user.Name != nil {
			fmt.Fprintf(w, "   Name: %s\n", *user.Name)
		}
		fmt.Fprintf(w, "   Role: %s\n", user.Role)
	}
	return nil
}

func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password for the new admin: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}
