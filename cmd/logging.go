package cmd

import (
	"github.com/urfave/cli"

	"github.com/natty-misc/foxel/log"
)

var logger = log.New("foxel")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
