/*
Copyright 2026 the CDP Integration Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/cdp-integration/webservice-tests/test/api"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var errNoAction = errors.New("one of --restore, --export or --probe is required")

type options struct {
	restore bool
	export  []string
	out     string
	probe   bool
	timeout time.Duration
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.BoolVar(&o.restore, "restore", false, "Restore the seeded dataset and wait for the service to return.")
	f.StringSliceVar(&o.export, "export", nil, "Engineering model setup iids to export as an exchange file.")
	f.StringVar(&o.out, "out", "export.zip", "File to write an export to.")
	f.BoolVar(&o.probe, "probe", false, "Print a summary of the site directory and seeded engineering model.")
	f.DurationVar(&o.timeout, "timeout", 0, "Override the configured request timeout.")
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	var zapOptions zap.Options

	goflags := flag.NewFlagSet("", flag.ExitOnError)
	zapOptions.BindFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("cdp-dataset")

	ctx := log.IntoContext(cr.SetupSignalHandler(), logger)

	if err := run(ctx, &o); err != nil {
		logger.Error(err, "dataset command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, o *options) error {
	if !o.restore && len(o.export) == 0 && !o.probe {
		return errNoAction
	}

	config, err := api.LoadTestConfig()
	if err != nil {
		return err
	}

	if o.timeout != 0 {
		config.RequestTimeout = o.timeout
	}

	logger := log.FromContext(ctx).WithName("client")

	client, err := api.NewAPIClientFromConfig(config, api.WithLogger(api.NewLogrLogger(logger)))
	if err != nil {
		return err
	}

	if o.restore {
		if err := restore(ctx, client, config); err != nil {
			return err
		}
	}

	if len(o.export) > 0 {
		if err := export(ctx, client, o.export, o.out); err != nil {
			return err
		}
	}

	if o.probe {
		return probe(ctx, client)
	}

	return nil
}

func restore(ctx context.Context, client *api.APIClient, config *api.TestConfig) error {
	log.FromContext(ctx).Info("restoring dataset", "hostname", client.BaseURL())

	if err := client.Restore(ctx); err != nil {
		return err
	}

	if err := client.WaitForService(ctx, config.RequestTimeout); err != nil {
		return err
	}

	color.Green("dataset restored")

	return nil
}

func export(ctx context.Context, client *api.APIClient, setupIids []string, out string) error {
	log.FromContext(ctx).Info("exporting engineering models", "setups", setupIids, "out", out)

	data, err := client.ExportModel(ctx, setupIids)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	color.Green("wrote %d bytes to %s", len(data), out)

	return nil
}

func probe(ctx context.Context, client *api.APIClient) error {
	header := color.New(color.Bold, color.FgCyan)
	name := color.New(color.FgYellow)

	siteDirectories, err := client.Get(ctx, client.Endpoints().SiteDirectories())
	if err != nil {
		return err
	}

	header.Printf("%s\n", client.BaseURL())

	for _, siteDirectory := range siteDirectories {
		shortName, _ := siteDirectory.String(api.PropertyShortName)
		persons, _ := siteDirectory.Strings(api.PropertyPerson)
		models, _ := siteDirectory.Strings(api.PropertyModel)

		fmt.Printf("%s %s revision %d, %d persons, %d model setups\n",
			name.Sprint(shortName), siteDirectory.Iid(), siteDirectory.RevisionNumber(), len(persons), len(models))
	}

	things, err := client.Get(ctx, api.WithQuery(client.Endpoints().EngineeringModel(api.EngineeringModelIid), api.Deep()))
	if err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			color.Red("seeded engineering model %s is missing", api.EngineeringModelIid)
			return nil
		}

		return err
	}

	counts := map[api.ClassKind]int{}

	for _, thing := range things {
		counts[thing.ClassKind()]++
	}

	kinds := make([]api.ClassKind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	header.Printf("EngineeringModel %s\n", api.EngineeringModelIid)

	for _, kind := range kinds {
		fmt.Printf("  %-32s %d\n", name.Sprint(kind), counts[kind])
	}

	return nil
}
