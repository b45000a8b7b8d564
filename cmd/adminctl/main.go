// Консольный клиент админки FITSIZ. Тонкая обертка над
// клиентской библиотекой: разбор аргументов и печать, без логики.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
	"github.com/jdifek/fitziz-adminka/internal/client/session"
)

const defaultBaseURL = "http://localhost:3333"

func main() {
	baseURL := os.Getenv("FITSIZ_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := api.NewClient(baseURL)
	sess, err := session.NewManager(client)
	if err != nil {
		fatal(err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, client, sess, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			fatal(errors.New("invalid username or password"))
		}
		fatal(err)
	}
}

func run(ctx context.Context, client *api.Client, sess *session.Manager, command string, args []string) error {
	switch command {
	case "login":
		return login(ctx, sess, args)
	case "logout":
		return sess.Logout(ctx)
	case "status":
		if sess.IsLoggedIn() {
			fmt.Println("logged in")
		} else {
			fmt.Println("logged out")
		}
		return nil
	case "masks":
		return masks(ctx, client, args)
	case "videos":
		return videos(ctx, client, args)
	case "users":
		return users(ctx, client, args)
	case "features":
		return features(ctx, client, args)
	case "reviews":
		return reviews(ctx, client, args)
	case "template":
		return template(ctx, client, args)
	case "broadcast":
		if len(args) != 1 {
			return errors.New("usage: adminctl broadcast <text>")
		}
		if err := client.SendMessage(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("broadcast started")
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func login(ctx context.Context, sess *session.Manager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "admin username")
	fs.Parse(args)

	if *username == "" {
		return errors.New("usage: adminctl login -u <username>")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if err := sess.Login(ctx, *username, string(password)); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func masks(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl masks list|delete [id]")
	}
	switch args[0] {
	case "list":
		masks, err := client.ListMasks(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tEXTRAS")
		for _, m := range masks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", m.ID, m.Name, strOrDash(m.Price), len(m.ExtraFields))
		}
		return w.Flush()
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return client.DeleteMask(ctx, id)
	default:
		return fmt.Errorf("unknown masks subcommand %q", args[0])
	}
}

func videos(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl videos list|delete [id]")
	}
	switch args[0] {
	case "list":
		videos, err := client.ListVideos(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tURL")
		for _, v := range videos {
			fmt.Fprintf(w, "%d\t%s\t%s\n", v.ID, v.Title, strOrDash(v.URL))
		}
		return w.Flush()
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return client.DeleteVideo(ctx, id)
	default:
		return fmt.Errorf("unknown videos subcommand %q", args[0])
	}
}

func users(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl users list|assign|delete ...")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("users list", flag.ExitOnError)
		filter := fs.String("filter", "", "telegramId substring")
		fs.Parse(args[1:])

		users, err := client.ListUsers(ctx, *filter)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "TELEGRAM_ID\tNAME\tPHONE\tMASK_ID")
		for _, u := range users {
			maskID := "-"
			if u.MaskID != nil {
				maskID = strconv.Itoa(*u.MaskID)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.TelegramID, strOrDash(u.FirstName), strOrDash(u.Phone), maskID)
		}
		return w.Flush()
	case "assign":
		if len(args) != 3 {
			return errors.New("usage: adminctl users assign <telegramId> <maskId|none>")
		}
		var maskID *int
		if args[2] != "none" {
			id, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid mask id %q", args[2])
			}
			maskID = &id
		}
		_, err := client.AssignUserMask(ctx, args[1], maskID)
		return err
	case "delete":
		if len(args) != 2 {
			return errors.New("usage: adminctl users delete <telegramId>")
		}
		return client.DeleteUser(ctx, args[1])
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func features(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl features list|delete [id]")
	}
	switch args[0] {
	case "list":
		features, err := client.ListFeatures(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tMASK_ID")
		for _, f := range features {
			fmt.Fprintf(w, "%d\t%s\t%d\n", f.ID, f.Name, f.MaskID)
		}
		return w.Flush()
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return client.DeleteFeature(ctx, id)
	default:
		return fmt.Errorf("unknown features subcommand %q", args[0])
	}
}

func reviews(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl reviews list|delete [id]")
	}
	switch args[0] {
	case "list":
		reviews, err := client.ListReviews(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tUSER\tRATING\tMASK_ID")
		for _, r := range reviews {
			maskID := "-"
			if r.MaskID != nil {
				maskID = strconv.Itoa(*r.MaskID)
			}
			fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\n", r.ID, r.UserName, r.Rating, maskID)
		}
		return w.Flush()
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return client.DeleteReview(ctx, id)
	default:
		return fmt.Errorf("unknown reviews subcommand %q", args[0])
	}
}

func template(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: adminctl template get|set [text]")
	}
	switch args[0] {
	case "get":
		settings, err := client.ListSettings(ctx)
		if err != nil {
			return err
		}
		for _, s := range settings {
			if s.Key == "TG_MESSAGE_ON_ADD_MASK" {
				fmt.Println(s.Value)
				return nil
			}
		}
		return nil
	case "set":
		if len(args) != 2 {
			return errors.New("usage: adminctl template set <text>")
		}
		_, err := client.SaveSetting(ctx, "TG_MESSAGE_ON_ADD_MASK", args[1])
		return err
	default:
		return fmt.Errorf("unknown template subcommand %q", args[0])
	}
}

func idArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one id argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "adminctl:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: adminctl <command> [args]

commands:
  login -u <username>                 authenticate and store the session token
  logout                              drop the session
  status                              show whether a token is stored
  masks    list | delete <id>
  videos   list | delete <id>
  users    list [-filter <substr>] | assign <telegramId> <maskId|none> | delete <telegramId>
  features list | delete <id>
  reviews  list | delete <id>
  template get | set <text>           mask-added notification template
  broadcast <text>                    send a message to every user`)
}
