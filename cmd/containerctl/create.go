package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ghuser/freightbox/pkg/telemetry"
	appsvcs "github.com/ghuser/freightbox/services/container/application/services"
	containerdomain "github.com/ghuser/freightbox/services/container/domain"
	"github.com/ghuser/freightbox/services/container/domain/models"
)

type createFlags struct {
	owner      string
	lengthFt   float64
	variant    string
	celsius    float64
	fahrenheit float64
	items      []string
	count      int
}

func newCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one or more containers",
		Long: `Create containers and print their identifiers.

Refrigerated kinds need a temperature (--celsius or --fahrenheit); standard
containers must not have one.

Examples:
  containerctl create --owner CSQ --length 20
  containerctl create --owner ELO --length 200 --variant refrigerated --celsius 3 --item fish
  containerctl create --owner ELO --length 40 --variant heated-refrigerated --fahrenheit 14 --count 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := models.ParseVariantTag(flags.variant)
			if err != nil {
				return err
			}
			var celsius *float64
			switch {
			case cmd.Flags().Changed("celsius"):
				celsius = &flags.celsius
			case cmd.Flags().Changed("fahrenheit"):
				c := models.FahrenheitToCelsius(flags.fahrenheit)
				celsius = &c
			}
			if flags.count < 1 {
				return fmt.Errorf("%w: --count must be at least 1", containerdomain.ErrInvalidRequest)
			}
			return runCreate(cmd, appsvcs.CreateRequest{
				OwnerCode: flags.owner,
				LengthFt:  flags.lengthFt,
				Variant:   variant,
				Celsius:   celsius,
				Items:     flags.items,
			}, flags.count)
		},
	}

	cmd.Flags().StringVar(&flags.owner, "owner", "", "Three-letter owner code (e.g. CSQ)")
	cmd.Flags().Float64Var(&flags.lengthFt, "length", 0, "Container length in feet")
	cmd.Flags().StringVar(&flags.variant, "variant", models.VariantStandard.String(), "standard, refrigerated or heated-refrigerated")
	cmd.Flags().Float64Var(&flags.celsius, "celsius", 0, "Initial temperature in degrees Celsius")
	cmd.Flags().Float64Var(&flags.fahrenheit, "fahrenheit", 0, "Initial temperature in degrees Fahrenheit")
	cmd.Flags().StringArrayVar(&flags.items, "item", nil, "Item to load (repeatable)")
	cmd.Flags().IntVar(&flags.count, "count", 1, "Number of containers to create")
	cmd.MarkFlagsMutuallyExclusive("celsius", "fahrenheit")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func runCreate(cmd *cobra.Command, req appsvcs.CreateRequest, count int) error {
	ctx := cmd.Context()
	e, err := newEnv(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.close()

	created := make([]containerView, 0, count)
	for i := 0; i < count; i++ {
		c, err := e.services.Container.Create(ctx, req)
		if err != nil {
			if errors.Is(err, containerdomain.ErrSerialSpaceExhausted) {
				telemetry.CaptureFatal(err)
			}
			printCreated(cmd.OutOrStdout(), created)
			return err
		}
		created = append(created, newContainerView(c))
	}

	printCreated(cmd.OutOrStdout(), created)
	return nil
}

// containerView is the printed form of a container.
type containerView struct {
	Identifier string   `json:"identifier"`
	OwnerCode  string   `json:"owner_code"`
	Category   string   `json:"category"`
	Serial     string   `json:"serial"`
	CheckDigit int      `json:"check_digit"`
	Variant    string   `json:"variant"`
	LengthFt   float64  `json:"length_ft"`
	VolumeFt3  float64  `json:"volume_ft3"`
	Contents   []string `json:"contents"`
	Celsius    *float64 `json:"celsius,omitempty"`
	Fahrenheit *float64 `json:"fahrenheit,omitempty"`
}

func newContainerView(c *models.Container) containerView {
	v := containerView{
		Identifier: c.Identifier(),
		OwnerCode:  c.OwnerCode().String(),
		Category:   c.Category().String(),
		Serial:     c.Serial().String(),
		CheckDigit: c.CheckDigit(),
		Variant:    c.Variant().String(),
		LengthFt:   c.LengthFt(),
		VolumeFt3:  c.VolumeFt3(),
		Contents:   c.Contents(),
	}
	if celsius, ok := c.Celsius(); ok {
		fahrenheit := models.CelsiusToFahrenheit(celsius)
		v.Celsius = &celsius
		v.Fahrenheit = &fahrenheit
	}
	return v
}

func printCreated(w io.Writer, created []containerView) {
	if jsonOutput {
		writeJSON(w, created)
		return
	}
	for _, v := range created {
		fmt.Fprintf(w, "%s  %-19s  %7.1f ft3", v.Identifier, v.Variant, v.VolumeFt3)
		if v.Celsius != nil {
			fmt.Fprintf(w, "  %.2f°C", *v.Celsius)
		}
		if len(v.Contents) > 0 {
			fmt.Fprintf(w, "  %d item(s)", len(v.Contents))
		}
		fmt.Fprintln(w)
	}
}
