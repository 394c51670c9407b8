package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"myrouting/integration/scenario"
)

const (
	defaultGRPCAddrs = "localhost:50051"
	defaultHTTPURLs  = "http://localhost:8080"
	scenarioAll      = "all"
)

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run, or all (or pass as positional arg)")
	grpcAddrs := flag.String("grpc", "", "comma-separated gRPC addresses of the nodes (default: ROUTING_GRPC_ADDRS env or localhost:50051)")
	httpURLs := flag.String("http", "", "comma-separated HTTP base URLs of the nodes, same order as -grpc (default: ROUTING_HTTP_URLS env or http://localhost:8080)")
	sessions := flag.Int("sessions", 20, "session ids located per scenario")
	delimiter := flag.String("delimiter", ".", "locator delimiter of the cluster")
	flag.Parse()

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	nodes, err := parseNodes(firstNonEmpty(*grpcAddrs, os.Getenv("ROUTING_GRPC_ADDRS"), defaultGRPCAddrs),
		firstNonEmpty(*httpURLs, os.Getenv("ROUTING_HTTP_URLS"), defaultHTTPURLs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	name := *scenarioName
	if name == "" && flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: routecheck [--list] [--scenario=NAME|all] [--grpc=ADDR,...] [--http=URL,...] [--sessions=N] [--delimiter=D] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}
	names := []string{name}
	if name == scenarioAll {
		names = scenario.Names()
	}

	cfg := &scenario.Config{
		Nodes:     nodes,
		Sessions:  *sessions,
		Delimiter: *delimiter,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	failed := false
	for _, n := range names {
		err := scenario.Run(n, ctx, cfg)

		fmt.Println("\n=== Scenario Result ===")
		fmt.Printf("Scenario: %s\n", n)
		if err != nil {
			fmt.Printf("Status: FAILED\n")
			fmt.Printf("Error: %v\n", err)
			fmt.Println("=====================")
			var unknown *scenario.UnknownScenarioError
			if errors.As(err, &unknown) {
				fmt.Fprintf(os.Stderr, "\navailable scenarios: %s\n", strings.Join(scenario.Names(), ", "))
				os.Exit(2)
			}
			failed = true
			continue
		}
		fmt.Printf("Status: PASSED\n")
		fmt.Println("=====================")
	}
	if failed {
		os.Exit(1)
	}
}

// parseNodes pairs the i-th gRPC address with the i-th HTTP URL.
func parseNodes(grpcAddrs, httpURLs string) ([]scenario.Node, error) {
	addrs := splitList(grpcAddrs)
	urls := splitList(httpURLs)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no gRPC addresses")
	}
	if len(addrs) != len(urls) {
		return nil, fmt.Errorf("%d gRPC addresses but %d HTTP URLs", len(addrs), len(urls))
	}
	nodes := make([]scenario.Node, len(addrs))
	for i := range addrs {
		nodes[i] = scenario.Node{GRPCAddr: addrs[i], HTTPURL: strings.TrimRight(urls[i], "/")}
	}
	return nodes, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
