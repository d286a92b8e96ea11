// Command vertify converts raw text into NoSketch Engine vertical
// corpora. This is the composition root: it wires the filesystem loader,
// the corpus materializer and the config store into the convert service
// and hands the service to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/vertify/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vertify/internal/adapters/driving/cli"
	"github.com/custodia-labs/vertify/internal/connectors/filesystem"
	"github.com/custodia-labs/vertify/internal/core/services"
	"github.com/custodia-labs/vertify/internal/logger"
	"github.com/custodia-labs/vertify/internal/nosketch"
)

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "vertify: load configuration: %v\n", err)
		os.Exit(1)
	}

	loader := filesystem.New()
	converter := services.NewConvertService(
		loader,
		loader,
		nosketch.NewFactory(),
		logger.Default(),
	)

	cli.Init(converter, configStore)
	cli.Execute()
}
