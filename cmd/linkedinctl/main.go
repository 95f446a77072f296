package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/mycelian/linkedin/client"
)

var apiURL string
var debug bool

const requestTimeout = 20 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Int("status", client.StatusCode(err)).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linkedinctl",
		Short:         "Query LinkedIn profiles, connections and people search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override LINKEDIN_API_URL")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newConnectionsCmd())
	rootCmd.AddCommand(newSearchCmd())

	return rootCmd
}

// newClient builds a client from LINKEDIN_* variables plus the root flags.
func newClient() (*client.Client, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if debug {
		cfg.Debug = true
	}
	return client.NewFromConfig(cfg)
}

func newProfileCmd() *cobra.Command {
	var id, url, fields, lang string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Fetch a profile by --id, by public --url, or your own",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" && url != "" {
				return fmt.Errorf("--id and --url are mutually exclusive")
			}
			tag, err := normalizeLanguage(lang)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			res, err := c.People().GetProfile(ctx, client.ProfileRequest{
				ID:       id,
				URL:      url,
				Fields:   fields,
				Language: tag,
			})
			if err != nil {
				log.Error().Err(err).Str("id", id).Str("url", url).Dur("elapsed", time.Since(start)).Msg("get profile failed")
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("get profile completed")
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Member ID")
	cmd.Flags().StringVar(&url, "url", "", "Public profile URL")
	cmd.Flags().StringVar(&fields, "fields", "", "Field selector, e.g. (id,first-name,last-name)")
	cmd.Flags().StringVar(&lang, "language", "", "Preferred profile language (BCP 47), e.g. en-US")

	return cmd
}

func newConnectionsCmd() *cobra.Command {
	var req client.ConnectionsRequest

	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List your first-degree connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			res, err := c.People().GetConnections(ctx, req)
			if err != nil {
				log.Error().Err(err).Int("start", req.Start).Int("count", req.Count).Msg("get connections failed")
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&req.Fields, "fields", "", "Field selector")
	cmd.Flags().IntVar(&req.Start, "start", 0, "Offset of the first connection")
	cmd.Flags().IntVar(&req.Count, "count", 0, "Page size")
	cmd.Flags().StringVar(&req.Modified, "modified", "", "Only connections that are 'new' or 'updated'")
	cmd.Flags().StringVar(&req.ModifiedSince, "modified-since", "", "Epoch milliseconds lower bound for --modified")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var req client.SearchRequest
	var currentCompany, currentTitle, currentSchool bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search people",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("current-company") {
				req.CurrentCompany = client.Bool(currentCompany)
			}
			if cmd.Flags().Changed("current-title") {
				req.CurrentTitle = client.Bool(currentTitle)
			}
			if cmd.Flags().Changed("current-school") {
				req.CurrentSchool = client.Bool(currentSchool)
			}
			if n := len(client.FacetCategories()); len(req.Facet) > n {
				log.Warn().Int("given", len(req.Facet)).Int("used", n).Msg("extra --facet values are ignored")
			}

			log.Debug().
				Str("fields", req.Fields).
				Str("keywords", req.Keywords).
				Strs("facet", req.Facet).
				Msg("searching people")

			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			res, err := c.People().Search(ctx, req)
			if err != nil {
				log.Error().Err(err).Str("keywords", req.Keywords).Msg("search failed")
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Fields, "fields", "", "Field selector; include api-standard-profile-request to resolve out-of-network profiles")
	f.StringVar(&req.Keywords, "keywords", "", "Keywords")
	f.StringVar(&req.FirstName, "first-name", "", "First name")
	f.StringVar(&req.LastName, "last-name", "", "Last name")
	f.StringVar(&req.CompanyName, "company-name", "", "Company name")
	f.BoolVar(&currentCompany, "current-company", false, "Restrict company-name to the current company")
	f.StringVar(&req.Title, "title", "", "Title")
	f.BoolVar(&currentTitle, "current-title", false, "Restrict title to the current title")
	f.StringVar(&req.SchoolName, "school-name", "", "School name")
	f.BoolVar(&currentSchool, "current-school", false, "Restrict school-name to the current school")
	f.StringVar(&req.CountryCode, "country-code", "", "ISO 3166 country code")
	f.StringVar(&req.PostalCode, "postal-code", "", "Postal code")
	f.IntVar(&req.Distance, "distance", 0, "Distance from postal code")
	f.StringVar(&req.Facets, "facets", "", "Facet names to return, comma separated")
	f.StringArrayVar(&req.Facet, "facet", nil, "Facet value, repeatable; paired in order with location, industry, network, language, current-company, past-company, school")
	f.IntVar(&req.Start, "start", 0, "Offset of the first result")
	f.IntVar(&req.Count, "count", 0, "Page size")
	f.StringVar(&req.Sort, "sort", "", "connections, recommenders, distance or relevance")

	return cmd
}

// normalizeLanguage canonicalizes a BCP 47 tag; empty stays empty.
func normalizeLanguage(lang string) (string, error) {
	if lang == "" {
		return "", nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("invalid --language %q: %w", lang, err)
	}
	return tag.String(), nil
}

func printResult(out io.Writer, res client.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
