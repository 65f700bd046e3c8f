package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"rr-scheduler/api"
	"rr-scheduler/config"
	"rr-scheduler/internal/logging"
	"rr-scheduler/internal/report"
	"rr-scheduler/internal/requests"
	"rr-scheduler/internal/schedulers"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		os.Exit(serve(os.Args[2:], os.Stderr))
	}
	os.Exit(simulate(os.Args[1:], os.Stdout, os.Stderr))
}

// simulate runs one process file through the scheduler and prints the
// averages. It returns the process exit status.
func simulate(args []string, stdout, stderr io.Writer) int {
	prog := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config.yaml")
	showTable := fs.Bool("table", false, "print per-process statistics")
	showTrace := fs.Bool("trace", false, "print the dispatch timeline")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s: usage: %s [-table] [-trace] [-config path] file quantum\n", prog, prog)
		fmt.Fprintf(stderr, "       %s serve [-config path]\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	slog.SetDefault(logging.BuildLogger(stderr, cfg.LogLevel))

	request, err := requests.ReadProcessFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	policy, err := schedulers.ParseQuantum(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	response, err := schedulers.ScheduleRoundRobin(request, policy)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	if err := report.PrintAverages(stdout, response); err != nil {
		fmt.Fprintf(stderr, "%s: stdout: %v\n", prog, err)
		return 1
	}
	if *showTable {
		report.RenderDetails(stdout, response)
	}
	if *showTrace {
		report.RenderTimeline(stdout, response)
	}
	return 0
}

func serve(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config.yaml")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	slog.SetDefault(logging.BuildLogger(stderr, cfg.LogLevel))

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("listening", slog.String("addr", addr), slog.String("default_quantum", cfg.RoundRobinTimeQuantum))
	if err := app.Listen(addr); err != nil {
		slog.Error("server stopped", logging.ErrAttr(err))
		return 1
	}
	return 0
}
