package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/vskvj3/dlist/internal/core"
	"github.com/vskvj3/dlist/internal/datastructures"
	"github.com/vskvj3/dlist/internal/utils"
)

func main() {
	configPtr := flag.String("config", "", "Path to config file (JSON, or YAML by extension)")
	scriptPtr := flag.String("script", "", "Run commands from a text, .yaml or .msgpack file")
	outputPtr := flag.String("output", "", "Response format: text or msgpack")
	debugPtr := flag.Bool("debug", false, "Print debug logs to stdout")
	demoPtr := flag.Bool("demo", false, "Run the built-in demonstration and exit")
	flag.Parse()

	configPath := *configPtr
	if configPath == "" {
		dataDir, err := utils.DataDir()
		if err != nil {
			utils.NewLoggerWithWriter(os.Stderr, false).Error(err.Error())
			os.Exit(1)
		}
		configPath = filepath.Join(dataDir, "dlist.conf")
	}

	if _, err := utils.LoadConfig(configPath); err != nil {
		utils.NewLoggerWithWriter(os.Stderr, false).Error("Error loading configuration: " + err.Error())
		os.Exit(1)
	}
	config, err := utils.GetConfig()
	if err != nil {
		utils.NewLoggerWithWriter(os.Stderr, false).Error(err.Error())
		os.Exit(1)
	}
	if *debugPtr {
		config.Debug = true
	}
	if *outputPtr != "" {
		if err := utils.ValidateOutput(*outputPtr); err != nil {
			utils.NewLoggerWithWriter(os.Stderr, false).Error(err.Error())
			os.Exit(2)
		}
		config.Output = *outputPtr
	}
	if *scriptPtr != "" {
		config.Script = *scriptPtr
	}

	utils.NewLogger(config.LogFile, config.Debug)
	logger := utils.GetLogger()
	logger.Infof("Loaded configurations from %s", configPath)

	list := datastructures.NewList(config.InitialValues...)
	driver := NewDriver(core.NewCommandHandler(list, logger), logger, os.Stdout, config.Output)

	switch {
	case *demoPtr:
		logger.Info("Running built-in demo")
		err = driver.RunDemo()
	case config.Script != "":
		logger.Infof("Running script %s", config.Script)
		err = driver.RunScriptFile(config.Script)
	default:
		logger.Info("Starting interactive session")
		err = driver.RunInteractive(os.Stdin)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
