// Command bl-console is a terminal front end for the Brunet-Lézine
// assessment backend: it logs in, keeps the session in a file under the
// user config directory, and walks the same role-gated surface the web
// console exposes.
//
// Usage:
//
//	bl-console login <username>    prompt-less login; password via BL_PASSWORD or stdin
//	bl-console logout              discard the stored session
//	bl-console whoami              print the current session
//	bl-console menu                print the role-gated menu
//	bl-console nav <path>          evaluate one navigation attempt
//	bl-console children            list registered children
//
// Configuration comes from BL_* environment variables, optionally via a
// .env file in the working directory.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	brunetlezine "github.com/Alexnarea/brunet-lezine"
	"github.com/Alexnarea/brunet-lezine/client"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	engine, err := buildEngine()
	if err != nil {
		log.Fatalf("Failed to initialize console: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "login":
		err = cmdLogin(ctx, engine, os.Args[2:])
	case "logout":
		err = engine.Logout(ctx)
		if err == nil {
			fmt.Println("session cleared")
		}
	case "whoami":
		err = cmdWhoami(ctx, engine)
	case "menu":
		err = cmdMenu(ctx, engine)
	case "nav":
		err = cmdNav(ctx, engine, os.Args[2:])
	case "children":
		err = cmdChildren(ctx, engine)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bl-console <login|logout|whoami|menu|nav|children> [args]")
}

func buildEngine() (*brunetlezine.Engine, error) {
	cfg, err := brunetlezine.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	// The CLI needs the session to survive between invocations, so the
	// default backend is a file under the user config dir rather than
	// the library's in-memory store.
	if os.Getenv("BL_STORE_BACKEND") == "" {
		cfg.Store.Backend = brunetlezine.BackendFile
	}
	if cfg.Store.Backend == brunetlezine.BackendFile && cfg.Store.FilePath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate config dir: %w", err)
		}
		cfg.Store.FilePath = filepath.Join(configDir, "bl-console", "session.json")
	}

	return brunetlezine.New().WithConfig(cfg).Build()
}

func cmdLogin(ctx context.Context, engine *brunetlezine.Engine, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bl-console login <username>")
	}
	username := args[0]

	password := os.Getenv("BL_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	if err := engine.Login(ctx, username, password); err != nil {
		return err
	}

	state := engine.Snapshot(ctx)
	fmt.Printf("logged in as %s (%s)\n", state.Subject, joinRoles(state))
	return nil
}

func cmdWhoami(ctx context.Context, engine *brunetlezine.Engine) error {
	state := engine.Snapshot(ctx)
	if !state.Authenticated {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("subject: %s\n", state.Subject)
	fmt.Printf("roles:   %s\n", joinRoles(state))
	if state.UserID != 0 {
		fmt.Printf("user id: %d\n", state.UserID)
	}
	if !state.ExpiresAt.IsZero() {
		fmt.Printf("expires: %s\n", state.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func cmdMenu(ctx context.Context, engine *brunetlezine.Engine) error {
	entries := engine.Menu(ctx)
	if entries == nil {
		fmt.Println("not logged in")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%-16s %s\n", entry.Path, entry.Title)
	}
	return nil
}

func cmdNav(ctx context.Context, engine *brunetlezine.Engine, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bl-console nav <path>")
	}

	decision := engine.Navigate(ctx, args[0])
	if decision.Target != "" {
		fmt.Printf("%s -> %s\n", decision.Outcome, decision.Target)
		return nil
	}
	fmt.Println(decision.Outcome)
	return nil
}

func cmdChildren(ctx context.Context, engine *brunetlezine.Engine) error {
	children, err := client.NewChildrenService(engine.API()).List(ctx)
	if err != nil {
		return err
	}

	if len(children) == 0 {
		fmt.Println("no children registered")
		return nil
	}
	for _, child := range children {
		fmt.Printf("%4d  %-30s %-12s %s\n", child.ID, child.FullName, child.NUI, child.Birthdate)
	}
	return nil
}

func joinRoles(state brunetlezine.SessionState) string {
	list := state.Roles.List()
	parts := make([]string, len(list))
	for i, role := range list {
		parts[i] = string(role)
	}
	if len(parts) == 0 {
		return "no roles"
	}
	return strings.Join(parts, ", ")
}
