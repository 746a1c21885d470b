package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mcp"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mock"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/server"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/web"
)

// commands builds the command tree around shared output streams.
type commands struct {
	out    io.Writer
	errOut io.Writer
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(out, errOut io.Writer) *cli.App {
	c := &commands{out: out, errOut: errOut}
	app := &cli.App{
		Name:      "arkode",
		Usage:     "ARKODE OS dashboard client",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "home", EnvVars: []string{"ARKODE_HOME"}, Usage: "Config and data directory (default ~/.arkode)"},
			&cli.StringFlag{Name: "storage", Usage: "Override storage: sqlite|redis|memory"},
			&cli.BoolFlag{Name: "json", Usage: "Machine-readable output"},
			&cli.BoolFlag{Name: "no-delay", Usage: "Disable simulated mock latency"},
			&cli.BoolFlag{Name: "verbose", Usage: "Debug logging"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Errors only"},
		},
		Commands: []*cli.Command{
			c.healthCmd(),
			c.loginCmd(),
			c.logoutCmd(),
			c.whoamiCmd(),
			c.workspacesCmd(),
			c.projectsCmd(),
			c.leadsCmd(),
			c.clientsCmd(),
			c.proposalsCmd(),
			c.calendarCmd(),
			c.kbCmd(),
			c.orionCmd(),
			c.githubCmd(),
			c.modeCmd(),
			c.resetCmd(),
			c.serveCmd(),
			c.webCmd(),
			c.mcpCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// run adapts fn to a cli action with a fresh runtime.
func (cm *commands) run(fn func(ctx context.Context, rt *runtime, c *cli.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		return withApp(c, cm.out, cm.errOut, func(ctx context.Context, rt *runtime) error {
			return fn(ctx, rt, c)
		})
	}
}

func argOrFlag(c *cli.Context, flag string) string {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " ")
	}
	return c.String(flag)
}

// ensureWorkspaces loads workspaces when none are known yet, so that an
// active workspace exists for project commands.
func ensureWorkspaces(ctx context.Context, rt *runtime) error {
	if rt.app.Stores.Workspace.Active() != nil {
		return nil
	}
	_, err := rt.app.LoadWorkspaces(ctx)
	return err
}

// Session

func (cm *commands) healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check whether the backend is reachable",
		Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
			ok := rt.app.CheckHealth(ctx)
			if rt.json {
				if err := outputJSON(rt.out, map[string]any{"ok": ok, "mode": rt.mode}); err != nil {
					return err
				}
			} else {
				status := "online"
				if !ok {
					status = "offline"
				}
				fmt.Fprintf(rt.out, "%s (%s)\n", status, rt.mode)
			}
			if !ok {
				return fmt.Errorf("backend is offline")
			}
			return nil
		}),
	}
}

func (cm *commands) loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email"},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, EnvVars: []string{"ARKODE_PASSWORD"}, Usage: "Account password"},
		},
		Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
			user, err := rt.app.Login(ctx, c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			return renderRecord(rt, user, [][2]any{{"ID", user.ID}, {"Name", user.Name}, {"Email", user.Email}})
		}),
	}
}

func (cm *commands) logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Sign out and drop the stored token",
		Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
			return rt.app.Logout(ctx)
		}),
	}
}

func (cm *commands) whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in user",
		Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
			st := rt.app.Stores.Auth.State()
			if !st.IsAuthenticated || st.User == nil {
				return errors.NewUnauthorized("not signed in; run arkode login")
			}
			u := st.User
			return renderRecord(rt, u, [][2]any{{"ID", u.ID}, {"Name", u.Name}, {"Email", u.Email}})
		}),
	}
}

// Workspaces and projects

func (cm *commands) workspacesCmd() *cli.Command {
	return &cli.Command{
		Name:    "workspaces",
		Aliases: []string{"ws"},
		Usage:   "List, create and select workspaces",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List workspaces",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					ws, err := rt.app.LoadWorkspaces(ctx)
					if err != nil {
						return err
					}
					active := rt.app.Stores.Workspace.Active()
					return render(rt, ws, table.Row{"", "ID", "Name", "Slug"}, func(add func(table.Row)) {
						for _, w := range ws {
							mark := ""
							if active != nil && active.ID == w.ID {
								mark = "*"
							}
							add(table.Row{mark, w.ID, w.Name, w.Slug})
						}
					})
				}),
			},
			{
				Name:      "create",
				Usage:     "Create a workspace",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "name", Aliases: []string{"n"}}},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					w, err := rt.app.CreateWorkspace(ctx, argOrFlag(c, "name"))
					if err != nil {
						return err
					}
					return renderRecord(rt, w, [][2]any{{"ID", w.ID}, {"Name", w.Name}, {"Slug", w.Slug}})
				}),
			},
			{
				Name:      "use",
				Usage:     "Make a workspace active",
				ArgsUsage: "<id>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					if len(rt.app.Stores.Workspace.Workspaces()) == 0 {
						if _, err := rt.app.LoadWorkspaces(ctx); err != nil {
							return err
						}
					}
					w, err := rt.app.SelectWorkspace(ctx, c.Args().First())
					if err != nil {
						return err
					}
					return renderRecord(rt, w, [][2]any{{"Active", w.Name}, {"ID", w.ID}})
				}),
			},
		},
	}
}

func (cm *commands) projectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "projects",
		Usage: "Projects of the active workspace",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List projects",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					if err := ensureWorkspaces(ctx, rt); err != nil {
						return err
					}
					ps, err := rt.app.LoadProjects(ctx)
					if err != nil {
						return err
					}
					return render(rt, ps, table.Row{"ID", "Name", "Status", "Client"}, func(add func(table.Row)) {
						for _, p := range ps {
							add(table.Row{p.ID, p.Name, p.Status, p.Client})
						}
					})
				}),
			},
			{
				Name:      "create",
				Usage:     "Create a project in the active workspace",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "name", Aliases: []string{"n"}}},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					if err := ensureWorkspaces(ctx, rt); err != nil {
						return err
					}
					p, err := rt.app.CreateProject(ctx, argOrFlag(c, "name"))
					if err != nil {
						return err
					}
					return renderRecord(rt, p, [][2]any{{"ID", p.ID}, {"Name", p.Name}, {"Workspace", p.WorkspaceID}})
				}),
			},
			{
				Name:      "show",
				Usage:     "Show a project with its stats",
				ArgsUsage: "<id>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					d, err := rt.app.OpenProject(ctx, c.Args().First())
					if err != nil {
						return err
					}
					return renderRecord(rt, d, [][2]any{
						{"ID", d.ID}, {"Name", d.Name}, {"Status", d.Status}, {"Client", d.Client},
						{"Stories", d.Stats.Stories}, {"Tasks", d.Stats.Tasks},
					})
				}),
			},
		},
	}
}

// Agency

func (cm *commands) leadsCmd() *cli.Command {
	return &cli.Command{
		Name:  "leads",
		Usage: "Sales leads",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List leads",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					ls, err := rt.app.LoadLeads(ctx)
					if err != nil {
						return err
					}
					return render(rt, ls, table.Row{"ID", "Name", "Email", "Status", "Next step"}, func(add func(table.Row)) {
						for _, l := range ls {
							add(table.Row{l.ID, l.Name, l.Email, l.Status, l.NextStep})
						}
					})
				}),
			},
			{
				Name:  "create",
				Usage: "Create a lead",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}},
					&cli.StringFlag{Name: "status", Usage: "new|contacted|interested|closed"},
					&cli.StringFlag{Name: "next-step"},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					l, err := rt.app.CreateLead(ctx, model.NewLead{
						Name:     c.String("name"),
						Email:    c.String("email"),
						Status:   model.LeadStatus(c.String("status")),
						NextStep: c.String("next-step"),
					})
					if err != nil {
						return err
					}
					return renderRecord(rt, l, [][2]any{{"ID", l.ID}, {"Name", l.Name}, {"Email", l.Email}, {"Status", l.Status}})
				}),
			},
		},
	}
}

func (cm *commands) clientsCmd() *cli.Command {
	return &cli.Command{
		Name:  "clients",
		Usage: "Agency clients",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List clients",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					cs, err := rt.app.LoadClients(ctx)
					if err != nil {
						return err
					}
					return render(rt, cs, table.Row{"ID", "Name", "Segment"}, func(add func(table.Row)) {
						for _, cl := range cs {
							add(table.Row{cl.ID, cl.Name, cl.Segment})
						}
					})
				}),
			},
			{
				Name:  "create",
				Usage: "Create a client",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}},
					&cli.StringFlag{Name: "segment"},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					cl, err := rt.app.CreateClient(ctx, model.NewClient{Name: c.String("name"), Segment: c.String("segment")})
					if err != nil {
						return err
					}
					return renderRecord(rt, cl, [][2]any{{"ID", cl.ID}, {"Name", cl.Name}, {"Segment", cl.Segment}})
				}),
			},
		},
	}
}

func (cm *commands) proposalsCmd() *cli.Command {
	return &cli.Command{
		Name:  "proposals",
		Usage: "Client proposals",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List proposals",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					ps, err := rt.app.LoadProposals(ctx)
					if err != nil {
						return err
					}
					return render(rt, ps, table.Row{"ID", "Title", "Status"}, func(add func(table.Row)) {
						for _, p := range ps {
							add(table.Row{p.ID, p.Title, p.Status})
						}
					})
				}),
			},
			{
				Name:  "create",
				Usage: "Create a proposal (markdown may be piped via stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "status", Usage: "draft|sent|approved|rejected"},
					&cli.StringFlag{Name: "markdown", Aliases: []string{"m"}},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					md, err := markdownInput(c)
					if err != nil {
						return err
					}
					p, err := rt.app.CreateProposal(ctx, model.NewProposal{
						Title:    c.String("title"),
						Status:   model.ProposalStatus(c.String("status")),
						Markdown: md,
					})
					if err != nil {
						return err
					}
					return renderRecord(rt, p, [][2]any{{"ID", p.ID}, {"Title", p.Title}, {"Status", p.Status}})
				}),
			},
			{
				Name:      "show",
				Usage:     "Print a proposal's markdown",
				ArgsUsage: "<id>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					p, err := rt.app.OpenProposal(ctx, c.Args().First())
					if err != nil {
						return err
					}
					if rt.json {
						return outputJSON(rt.out, p)
					}
					fmt.Fprintln(rt.out, p.Markdown)
					return nil
				}),
			},
		},
	}
}

func (cm *commands) calendarCmd() *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Content calendar",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List calendar items",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					items, err := rt.app.LoadCalendar(ctx)
					if err != nil {
						return err
					}
					return render(rt, items, table.Row{"ID", "Date", "Title", "Status"}, func(add func(table.Row)) {
						for _, it := range items {
							add(table.Row{it.ID, it.Date, it.Title, it.Status})
						}
					})
				}),
			},
			{
				Name:  "create",
				Usage: "Schedule a calendar item",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "YYYY-MM-DD"},
					&cli.StringFlag{Name: "status", Usage: "draft|scheduled|published"},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					it, err := rt.app.CreateCalendarItem(ctx, model.NewCalendarItem{
						Title:  c.String("title"),
						Date:   c.String("date"),
						Status: model.CalendarStatus(c.String("status")),
					})
					if err != nil {
						return err
					}
					return renderRecord(rt, it, [][2]any{{"ID", it.ID}, {"Date", it.Date}, {"Title", it.Title}, {"Status", it.Status}})
				}),
			},
		},
	}
}

// Knowledge base

func (cm *commands) kbCmd() *cli.Command {
	articleTable := func(rt *runtime, as []model.Article) error {
		return render(rt, as, table.Row{"ID", "Title", "Tags", "Updated"}, func(add func(table.Row)) {
			for _, a := range as {
				add(table.Row{a.ID, a.Title, strings.Join(a.Tags, ", "), a.UpdatedAt})
			}
		})
	}
	return &cli.Command{
		Name:  "kb",
		Usage: "Knowledge base articles",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List articles",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					as, err := rt.app.LoadArticles(ctx)
					if err != nil {
						return err
					}
					return articleTable(rt, as)
				}),
			},
			{
				Name:      "search",
				Usage:     "Filter articles by title/tag text and tags",
				ArgsUsage: "[query]",
				Flags:     []cli.Flag{&cli.StringSliceFlag{Name: "tag", Usage: "Match any of these tags (repeatable)"}},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					if _, err := rt.app.LoadArticles(ctx); err != nil {
						return err
					}
					return articleTable(rt, rt.app.SearchArticles(strings.Join(c.Args().Slice(), " "), c.StringSlice("tag")))
				}),
			},
			{
				Name:  "create",
				Usage: "Create an article (markdown may be piped via stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
					&cli.StringFlag{Name: "markdown", Aliases: []string{"m"}},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					md, err := markdownInput(c)
					if err != nil {
						return err
					}
					a, err := rt.app.CreateArticle(ctx, c.String("title"), c.String("tags"), md)
					if err != nil {
						return err
					}
					return renderRecord(rt, a, [][2]any{{"ID", a.ID}, {"Title", a.Title}, {"Tags", strings.Join(a.Tags, ", ")}})
				}),
			},
			{
				Name:      "show",
				Usage:     "Print an article's markdown",
				ArgsUsage: "<id>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					a, err := rt.app.OpenArticle(ctx, c.Args().First())
					if err != nil {
						return err
					}
					if rt.json {
						return outputJSON(rt.out, a)
					}
					fmt.Fprintln(rt.out, a.Markdown)
					return nil
				}),
			},
		},
	}
}

// ORION

func (cm *commands) orionCmd() *cli.Command {
	return &cli.Command{
		Name:  "orion",
		Usage: "ORION assistant",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate an artifact",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "backlog|proposal|contentPlan"},
					&cli.StringFlag{Name: "prompt", Aliases: []string{"p"}},
				},
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					art, err := rt.app.GenerateArtifact(ctx, model.GenerateRequest{
						Type:   model.ArtifactType(c.String("type")),
						Prompt: c.String("prompt"),
					})
					if err != nil {
						return err
					}
					if rt.json {
						return outputJSON(rt.out, art)
					}
					var data any
					if err := json.Unmarshal(art.Data, &data); err != nil {
						return err
					}
					fmt.Fprintf(rt.out, "%s artifact %s\n", art.Type, art.ID)
					return outputJSON(rt.out, data)
				}),
			},
			{
				Name:      "chat",
				Usage:     "Send a message and print the reply",
				ArgsUsage: "<message>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					if _, err := rt.app.SendMessage(ctx, strings.Join(c.Args().Slice(), " ")); err != nil {
						return err
					}
					sess := rt.app.Stores.Orion.CurrentSession()
					if rt.json {
						return outputJSON(rt.out, sess)
					}
					for _, m := range sess.Messages {
						fmt.Fprintf(rt.out, "%s: %s\n", m.Role, m.Content)
					}
					return nil
				}),
			},
		},
	}
}

// Integrations

func (cm *commands) githubCmd() *cli.Command {
	return &cli.Command{
		Name:  "github",
		Usage: "GitHub integration",
		Subcommands: []*cli.Command{
			{
				Name:  "connect",
				Usage: "Connect GitHub",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					ok, err := rt.app.ConnectGitHub(ctx)
					if err != nil {
						return err
					}
					if rt.json {
						return outputJSON(rt.out, map[string]bool{"connected": ok})
					}
					fmt.Fprintf(rt.out, "connected: %t\n", ok)
					return nil
				}),
			},
			{
				Name:  "repos",
				Usage: "List repositories",
				Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
					rs, err := rt.app.ListGitHubRepos(ctx)
					if err != nil {
						return err
					}
					return render(rt, rs, table.Row{"ID", "Repository"}, func(add func(table.Row)) {
						for _, r := range rs {
							add(table.Row{r.ID, r.FullName})
						}
					})
				}),
			},
		},
	}
}

// Settings

func (cm *commands) modeCmd() *cli.Command {
	return &cli.Command{
		Name:  "mode",
		Usage: "Show or persist the data mode (mock or live)",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Print the active data mode",
				Action: cm.run(func(_ context.Context, rt *runtime, _ *cli.Context) error {
					if rt.json {
						return outputJSON(rt.out, map[string]any{"mode": rt.mode, "api_url": rt.cfg.APIURL})
					}
					fmt.Fprintln(rt.out, rt.mode)
					return nil
				}),
			},
			{
				Name:      "set",
				Usage:     "Persist the data mode for the next start",
				ArgsUsage: "<mock|live>",
				Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
					mode, err := source.ParseMode(c.Args().First())
					if err != nil {
						return errors.NewInvalidRequest(err.Error())
					}
					changed, err := rt.app.SetDataMode(ctx, rt.persist, rt.cfg, mode)
					if err != nil {
						return err
					}
					if rt.json {
						return outputJSON(rt.out, map[string]any{"mode": mode, "changed": changed})
					}
					fmt.Fprintln(rt.out, mode)
					return nil
				}),
			},
		},
	}
}

func (cm *commands) resetCmd() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Sign out and clear all cached state",
		Action: cm.run(func(ctx context.Context, rt *runtime, _ *cli.Context) error {
			return rt.app.ClearCache(ctx)
		}),
	}
}

// Servers

func (cm *commands) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local development backend over the mock data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"},
			&cli.StringFlag{Name: "secret", Usage: "JWT signing secret; empty leaves routes open"},
		},
		Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
			addr := c.String("addr")
			if addr == "" {
				addr = rt.cfg.ServerAddr
			}
			secret := c.String("secret")
			if secret == "" {
				secret = rt.cfg.ServerSecret
			}
			if secret == "" {
				rt.logger.Warn().Msg("no server secret configured; routes do not require a token")
			}
			srv := &http.Server{
				Addr: addr,
				Handler: server.New(server.Config{
					Source:   mock.New(mock.Options{StableStats: rt.cfg.StatsStable()}),
					Secret:   secret,
					TokenTTL: rt.cfg.TokenTTL(),
					Logger:   rt.logger,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return web.Run(ctx, srv, rt.logger)
		}),
	}
}

func (cm *commands) webCmd() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the dashboard UI",
		Flags: []cli.Flag{&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"}},
		Action: cm.run(func(ctx context.Context, rt *runtime, c *cli.Context) error {
			addr := c.String("addr")
			if addr == "" {
				addr = rt.cfg.WebAddr
			}
			return web.Run(ctx, web.NewServer(rt.app, Version, addr, rt.logger), rt.logger)
		}),
	}
}

func (cm *commands) mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the MCP tools on stdio",
		Action: cm.run(func(_ context.Context, rt *runtime, _ *cli.Context) error {
			if unknown := mcp.ValidateDisabledTools(rt.cfg.DisabledTools); len(unknown) > 0 {
				rt.logger.Warn().Strs("tools", unknown).Msg("unknown tools in disabled_tools")
			}
			return mcp.Run(rt.app, rt.cfg, rt.persist, Version)
		}),
	}
}
