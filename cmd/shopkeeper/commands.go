package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopkeeper/internal/catalog"
	"shopkeeper/internal/diagnostic"
	"shopkeeper/internal/recipe"
	"shopkeeper/internal/watch"
)

var errCheckFailed = errors.New("config has problems")

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile the config and print every diagnostic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := catalog.LoadFile(a.configPath)
			if err != nil {
				return err
			}

			cat, diags := a.compiler.Compile(doc)

			out := cmd.OutOrStdout()
			printDiagnostics(out, diags)

			fmt.Fprintf(out, "%d shop(s), %d error(s), %d warning(s), %d info(s)\n",
				cat.Len(), len(diags.Errors()), len(diags.Warnings()), len(diags.Infos()))

			if id := cat.DefaultShopID(); id != "" && !cat.Has(id) {
				fmt.Fprintf(out, "default shop %q does not exist\n", id)
			}

			if diags.HasErrors() || (strict && len(diags.Warnings()) > 0) {
				return errCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings as well as errors")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List compiled shops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.store.Load(); err != nil {
				return err
			}

			cat := a.store.Catalog()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPROFESSION\tTRADES\t")

			for _, s := range cat.Shops() {
				id := s.ID
				if catalog.NormalizeID(cat.DefaultShopID()) == id {
					id += " *"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t\n", id, s.DisplayName, s.Profession, len(s.Trades))
			}

			return w.Flush()
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [shop]",
		Short: "Print the recipes a shop offers; defaults to the default shop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.store.Load(); err != nil {
				return err
			}

			cat := a.store.Catalog()

			var (
				shop catalog.Shop
				ok   bool
			)

			if len(args) == 1 {
				shop, ok = cat.Shop(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", catalog.ErrShopNotFound, args[0])
				}
			} else {
				shop, ok = cat.Default()
				if !ok {
					return fmt.Errorf("%w: no usable default shop (default_shop is %q)",
						catalog.ErrShopNotFound, cat.DefaultShopID())
				}
			}

			printRecipes(cmd.OutOrStdout(), shop, a.projector.Project(shop))

			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <shop>",
		Short: "Add a shop with an example trade to the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.CreateShop(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created shop %q\n", catalog.NormalizeID(args[0]))

			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <shop>",
		Short: "Remove a shop from the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteShop(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted shop %q\n", catalog.NormalizeID(args[0]))

			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Load the config and reload it whenever the file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := a.store.Load(); err != nil {
				return err
			}

			w, err := watch.New(a.store.Path(), func(context.Context) error {
				_, err := a.store.Load()
				return err
			}, watch.WithLogger(a.logger))
			if err != nil {
				return err
			}

			if err := w.Start(ctx); err != nil {
				w.Stop()
				return err
			}

			<-w.Done()
			w.Stop()

			a.logger.Info("Stopped watching", zap.String("path", a.store.Path()))

			return nil
		},
	}
}

func printDiagnostics(out io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Entries {
		fmt.Fprintf(out, "%-7s %s\n", d.Severity, d)
	}
}

func printRecipes(out io.Writer, shop catalog.Shop, recipes []recipe.Recipe) {
	fmt.Fprintf(out, "%s (%s)\n", shop.ID, shop.DisplayName)

	if len(recipes) == 0 {
		fmt.Fprintln(out, "  no trades")
		return
	}

	for i, r := range recipes {
		var in string
		for j, d := range r.Ingredients {
			if j > 0 {
				in += " + "
			}

			in += d.String()
		}

		fmt.Fprintf(out, "  %d. %s -> %s  [uses %d, price x%g, xp %d]\n",
			i+1, in, r.Result, r.MaxUses, r.PriceMultiplier, r.BuyXP)
	}
}
