// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// jotview-mock-service is a drop-in stand-in for the jotform service
// during development. It speaks the same two-route HTTP API the real
// backend does, serving from an in-memory store:
//
//   - GET /jotforms: every stored jotform as a JSON array
//   - POST /jotforms/{id}/status: sets one jotform's status and
//     returns the updated record
//
// The store seeds from a JSONC fixtures file (--fixtures) or from a
// built-in sample set, and holds everything in memory: restart the
// process to reset. --latency adds an artificial delay to every
// request for exercising the viewer's background request paths.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/ljt019/jotview/lib/cli"
	"github.com/ljt019/jotview/lib/clock"
	schema "github.com/ljt019/jotview/lib/schema/jotform"
	"github.com/ljt019/jotview/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var listenAddress string
	var fixturesPath string
	var latency time.Duration

	flagSet := pflag.NewFlagSet("jotview-mock-service", pflag.ContinueOnError)
	flagSet.StringVar(&listenAddress, "listen", ":3030", "address to listen on")
	flagSet.StringVar(&fixturesPath, "fixtures", "", "JSONC file of jotforms to serve (default: built-in sample set)")
	flagSet.DurationVar(&latency, "latency", 0, "artificial delay added to every request")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the other
	// jotview binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("jotview-mock-service")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	clk := clock.Real()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var forms []schema.Jotform
	if fixturesPath != "" {
		loaded, err := loadFixtures(fixturesPath, clk)
		if err != nil {
			return cli.Validation("cannot load fixtures from %s: %w", fixturesPath, err)
		}
		forms = loaded
	} else {
		forms = seedJotforms()
	}

	store := &jotformStore{
		forms:   forms,
		logger:  logger,
		clock:   clk,
		latency: latency,
	}

	server := &http.Server{
		Addr:         listenAddress,
		Handler:      newMux(store),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.ListenAndServe()
	}()

	logger.Info("jotform mock service running",
		"listen", listenAddress,
		"jotforms", len(forms),
		"latency", latency,
	)

	select {
	case err := <-serverDone:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownContext, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownContext); err != nil {
		return err
	}
	if err := <-serverDone; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `jotview-mock-service: in-memory jotform service for development.

Serves the two routes jotview speaks:
  GET  /jotforms               full list as a JSON array
  POST /jotforms/{id}/status   set one jotform's status

Without --fixtures a built-in museum sample set loads. Fixture files
are JSONC (comments and trailing commas allowed) containing an array
of jotforms; entries without an id get a generated one, and entries
without a submission date are stamped with today's.

Usage:
  jotview-mock-service [flags]

Examples:
  # Serve the built-in sample set on :3030
  jotview-mock-service

  # Serve custom fixtures with 300ms of artificial latency
  jotview-mock-service --fixtures forms.jsonc --latency 300ms

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// newMux builds the service's route table.
func newMux(store *jotformStore) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jotforms", store.handleList)
	mux.HandleFunc("POST /jotforms/{id}/status", store.handleUpdateStatus)
	return mux
}

// jotformStore holds the served jotforms in memory. Insertion order
// is preserved: review ordering is the client's job, and a stable
// server order keeps refresh diffs predictable.
type jotformStore struct {
	mu    sync.Mutex
	forms []schema.Jotform

	logger  *slog.Logger
	clock   clock.Clock
	latency time.Duration
}

// List returns a copy of every stored jotform in insertion order.
func (store *jotformStore) List() []schema.Jotform {
	store.mu.Lock()
	defer store.mu.Unlock()
	forms := make([]schema.Jotform, len(store.forms))
	copy(forms, store.forms)
	return forms
}

// UpdateStatus sets the status of the jotform with the given id.
// The second return reports whether the id was found.
func (store *jotformStore) UpdateStatus(id string, status schema.Status) (schema.Jotform, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index := range store.forms {
		if store.forms[index].ID == id {
			store.forms[index].Status = status
			return store.forms[index], true
		}
	}
	return schema.Jotform{}, false
}

// delay applies the configured artificial latency. Goes through the
// injected clock so tests can step across it deterministically, and
// gives up early when the client hangs up.
func (store *jotformStore) delay(ctx context.Context) {
	if store.latency <= 0 {
		return
	}
	select {
	case <-store.clock.After(store.latency):
	case <-ctx.Done():
	}
}

func (store *jotformStore) handleList(w http.ResponseWriter, r *http.Request) {
	store.delay(r.Context())

	forms := store.List()
	store.logger.Info("list jotforms", "count", len(forms), "remote", r.RemoteAddr)
	writeJSON(w, http.StatusOK, forms)
}

// statusUpdateRequest is the wire body for POST /jotforms/{id}/status.
type statusUpdateRequest struct {
	NewStatus string `json:"new_status"`
}

func (store *jotformStore) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	store.delay(r.Context())

	id := r.PathValue("id")

	var request statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	status, err := schema.ParseStatus(request.NewStatus)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, found := store.UpdateStatus(id, status)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no jotform with id %q", id))
		return
	}

	store.logger.Info("status updated", "jotform", id, "status", status, "remote", r.RemoteAddr)
	writeJSON(w, http.StatusOK, updated)
}

// writeJSON serializes value as the response body with the given
// status code.
func writeJSON(w http.ResponseWriter, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(value)
}

// writeError writes the JSON error shape the jotview client parses:
// {"error": "..."}.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// loadFixtures reads a JSONC fixtures file: a top-level array of
// jotforms, with // comments, /* block comments */, and trailing
// commas allowed. Entries without an id get a generated UUID, and
// entries without a submission date are stamped with the clock's
// current date. Every entry must validate after normalization.
func loadFixtures(path string, clk clock.Clock) ([]schema.Jotform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return parseFixtures(data, clk)
}

func parseFixtures(data []byte, clk clock.Clock) ([]schema.Jotform, error) {
	stripped := jsonc.ToJSON(data)

	var forms []schema.Jotform
	if err := json.Unmarshal(stripped, &forms); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	for index := range forms {
		if forms[index].ID == "" {
			forms[index].ID = uuid.NewString()
		}
		if forms[index].CreatedAt.Date == "" {
			forms[index].CreatedAt.Date = clk.Now().Format(schema.DateLayout)
		}
		if err := forms[index].Validate(); err != nil {
			return nil, fmt.Errorf("fixtures entry %d: %w", index, err)
		}
	}
	return forms, nil
}

// seedJotforms is the built-in sample set served when no fixtures
// file is given: enough variety to exercise every status bucket,
// priority, and department styling the viewer has, plus one
// department outside the known set and one empty exhibit cell.
func seedJotforms() []schema.Jotform {
	return []schema.Jotform{
		{
			ID:            "jf-1001",
			SubmitterName: schema.SubmitterName{First: "Amelia", Last: "Torres"},
			CreatedAt:     schema.SubmissionDate{Date: "2026-01-12", Time: "9:05 AM"},
			Location:      "Main Atrium",
			ExhibitName:   "Foucault Pendulum",
			Description:   "Pendulum drive magnet cuts out after about an hour, and the swing decays until the bob barely clears the peg ring. Power cycling the base cabinet brings it back.",
			PriorityLevel: schema.PriorityHigh,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusInProgress,
		},
		{
			ID:            "jf-1002",
			SubmitterName: schema.SubmitterName{First: "Derek", Last: "Boone"},
			CreatedAt:     schema.SubmissionDate{Date: "2026-02-03", Time: "2:40 PM"},
			Location:      "West Wing",
			ExhibitName:   "Tornado Vortex",
			Description:   "Fog machine leaves an oily film on the inside of the chamber glass. Visitors wipe it with sleeves and make it worse.",
			PriorityLevel: schema.PriorityMedium,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusOpen,
		},
		{
			ID:            "jf-1003",
			SubmitterName: schema.SubmitterName{First: "Priya", Last: "Nair"},
			CreatedAt:     schema.SubmissionDate{Date: "2025-12-18", Time: "11:20 AM"},
			Location:      "Second Floor",
			ExhibitName:   "Circuit Workbench",
			Description:   "Two of the six soldering stations read dead. Breaker panel shows nothing tripped.",
			PriorityLevel: schema.PriorityMedium,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusOpen,
		},
		{
			ID:            "jf-1004",
			SubmitterName: schema.SubmitterName{First: "Hank", Last: "Osei"},
			CreatedAt:     schema.SubmissionDate{Date: "2026-01-28", Time: "8:15 AM"},
			Location:      "Loading Dock",
			ExhibitName:   "",
			Description:   "Dock leveler hydraulics groan under half load and the deck settles about an inch with a pallet jack on it.",
			PriorityLevel: schema.PriorityHigh,
			Department:    schema.DepartmentOperations,
			Status:        schema.StatusInProgress,
		},
		{
			ID:            "jf-1005",
			SubmitterName: schema.SubmitterName{First: "Rosa", Last: "Ibanez"},
			CreatedAt:     schema.SubmissionDate{Date: "2025-11-30", Time: "4:55 PM"},
			Location:      "East Gallery",
			ExhibitName:   "Dinosaur Dig Pit",
			Description:   "Sand sifting table drain clogs every morning before open. Scooping it out by hand works but takes twenty minutes.",
			PriorityLevel: schema.PriorityLow,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusClosed,
		},
		{
			ID:            "jf-1006",
			SubmitterName: schema.SubmitterName{First: "Miles", Last: "Archer"},
			CreatedAt:     schema.SubmissionDate{Date: "2026-02-10", Time: "10:00 AM"},
			Location:      "Planetarium",
			ExhibitName:   "Star Projector",
			Description:   "Projector color wheel sticks on amber during the dawn sequence. Manual nudge frees it until the next show.",
			PriorityLevel: schema.PriorityHigh,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusOpen,
		},
		{
			ID:            "jf-1007",
			SubmitterName: schema.SubmitterName{First: "June", Last: "Kowalski"},
			CreatedAt:     schema.SubmissionDate{Date: "2025-12-02", Time: "1:10 PM"},
			Location:      "Basement",
			ExhibitName:   "Steam Engine",
			Description:   "Condensate pump short-cycles overnight. Engine itself runs fine; the noise carries up through the east stairwell.",
			PriorityLevel: schema.PriorityLow,
			Department:    schema.DepartmentOperations,
			Status:        schema.StatusUnplanned,
		},
		{
			ID:            "jf-1008",
			SubmitterName: schema.SubmitterName{First: "Theo", Last: "Brandt"},
			CreatedAt:     schema.SubmissionDate{Date: "2026-01-05", Time: "3:30 PM"},
			Location:      "Roof",
			ExhibitName:   "Weather Station",
			Description:   "Anemometer bearing whines above twenty knots. Replaced once in the fall; the spare may be from the same bad batch.",
			PriorityLevel: schema.PriorityMedium,
			Department:    "Facilities",
			Status:        schema.StatusClosed,
		},
	}
}
