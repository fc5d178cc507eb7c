package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories, brands and products from a YAML fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}

		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		res, err := seed.Apply(cmd.Context(), e.db, fixture)
		if err != nil {
			return err
		}
		e.logger.Info("fixture loaded",
			zap.String("file", seedFile),
			zap.Int("categories", res.Categories),
			zap.Int("brands", res.Brands),
			zap.Int("products", res.Products),
			zap.Int("images", res.Images),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "catalog.yaml", "fixture to load")
	rootCmd.AddCommand(seedCmd)
}
