package system

import (
	"fmt"

	"github.com/taskquest/taskquest/internal/cli"
)

type FrameSetCmd struct {
	URL string `arg:"" help:"Image URL for the custom avatar frame."`
}

func (c *FrameSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	ctx.Engine.SetCustomFrameURL(c.URL)
	ctx.Engine.Flush()
	fmt.Println("Custom avatar frame set.")
	return nil
}

type FrameClearCmd struct{}

func (c *FrameClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	ctx.Engine.SetCustomFrameURL("")
	ctx.Engine.Flush()
	fmt.Println("Custom avatar frame cleared.")
	return nil
}
