package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Rosanadeaibes/my-notes/internal/client"
	"golang.org/x/term"
)

const usage = `Usage: notes [-server URL] <command> [args]

Commands:
  signup              create an account (prompts for email and password)
  signin              sign in and store the token pair locally
  refresh             mint a new access token from the stored refresh token
  logout              forget the stored tokens
  create TITLE TEXT   create a note
  list                list your notes, newest first
  search QUERY        search your notes by title or content
  get ID              fetch a single note
  update ID [-title T] [-content C]
  delete ID           delete a note
`

func main() {
	log.SetFlags(0)

	server := flag.String("server", "http://localhost:4000", "base URL of the notes server")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	storePath, err := client.DefaultTokenStorePath()
	if err != nil {
		log.Fatalf("%v", err)
	}
	api := client.New(*server, client.NewTokenStore(storePath))

	ctx := context.Background()

	if err := run(ctx, api, args[0], args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, api *client.Client, command string, args []string) error {
	switch command {
	case "signup":
		email, password, err := promptCredentials()
		if err != nil {
			return err
		}
		id, err := api.SignUp(ctx, email, password)
		if err != nil {
			return err
		}
		fmt.Printf("account created: %s\n", id)
		return nil

	case "signin":
		email, password, err := promptCredentials()
		if err != nil {
			return err
		}
		if err := api.SignIn(ctx, email, password); err != nil {
			return err
		}
		fmt.Println("signed in")
		return nil

	case "refresh":
		if err := api.Refresh(ctx); err != nil {
			return err
		}
		fmt.Println("access token refreshed")
		return nil

	case "logout":
		if err := api.Logout(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil

	case "create":
		if len(args) < 2 {
			return fmt.Errorf("create needs a title and content")
		}
		note, err := api.CreateNote(ctx, args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", note.ID)
		return nil

	case "list":
		notes, err := api.ListNotes(ctx)
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil

	case "search":
		if len(args) != 1 {
			return fmt.Errorf("search needs a query")
		}
		notes, err := api.SearchNotes(ctx, args[0])
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil

	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get needs a note id")
		}
		note, err := api.GetNote(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n%s\n", note.ID, note.Title, note.Content)
		return nil

	case "update":
		fs := flag.NewFlagSet("update", flag.ContinueOnError)
		title := fs.String("title", "", "new title")
		content := fs.String("content", "", "new content")
		if len(args) < 1 {
			return fmt.Errorf("update needs a note id")
		}
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		var titlePtr, contentPtr *string
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				titlePtr = title
			case "content":
				contentPtr = content
			}
		})

		note, err := api.UpdateNote(ctx, args[0], titlePtr, contentPtr)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s\n", note.ID)
		return nil

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete needs a note id")
		}
		if err := api.DeleteNote(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func promptCredentials() (string, string, error) {
	fmt.Print("email: ")
	reader := bufio.NewReader(os.Stdin)
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	fmt.Print("password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(email), string(password), nil
}

func printNotes(notes []client.Note) {
	for _, n := range notes {
		fmt.Printf("%s\t%s\t%s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title)
	}
}
