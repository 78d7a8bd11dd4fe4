package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/harrybrwn/config"
	"github.com/spf13/pflag"

	"github.com/packtime/api/client"
)

// Config is the terminal client config.
type Config struct {
	Host    string `config:"host,shorthand=H,usage=api server host" default:"localhost"`
	Port    int64  `config:"port,shorthand=P,usage=api server port" default:"8080"`
	Offline bool   `config:"offline,usage=browse the bundled course list without a server"`

	HistoryFile string `config:"history-file,notflag" default:".pt_history"`
}

// BaseURL builds the api base url from the config.
func (c *Config) BaseURL() string {
	return "http://" + net.JoinHostPort(
		config.GetString("host"),
		strconv.FormatInt(int64(config.GetInt("port")), 10),
	)
}

func initFlags(conf *Config) error {
	flag := pflag.NewFlagSet("pt", pflag.ContinueOnError)
	config.BindToPFlagSet(flag)
	flag.SortFlags = false
	switch err := flag.Parse(os.Args[1:]); err {
	case nil:
		break
	case pflag.ErrHelp:
		os.Exit(0)
	default:
		return err
	}
	return config.InitDefaults()
}

func main() {
	if err := run(); err != nil {
		log.Println(err)
	}
}

func run() error {
	var conf = &Config{}
	config.SetFilename("pt.yml")
	config.SetType("yml")
	config.AddPath(".")
	config.SetConfig(conf)
	if err := config.ReadConfigFile(); err != nil {
		log.Println("Warning:", err)
	}
	if err := initFlags(conf); err != nil {
		return err
	}

	c, err := client.New(conf.BaseURL())
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pt> ",
		HistoryFile:     conf.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sh := newShell(rl, c, conf.Offline)
	sh.start()
	for {
		err = sh.run()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Println("Use 'exit' to leave.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Println("Error:", err)
		}
	}
}
