package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"car-catalog/internal/catalog"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog as a table",
		Long: `Print every car in the catalog file as a table, in the order given by
--sort (file order by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			log, cleanup, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			cars := catalog.Sorted(catalog.NewLoader(log).Load(cfg.CatalogFile), cfg.SortOrder())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(cars))
			return err
		},
	}
}

func renderTable(cars []catalog.Car) string {
	rows := make([][]string, len(cars))
	for i, car := range cars {
		rows[i] = []string{strconv.Itoa(i + 1), car.Brand, car.Model, strconv.Itoa(car.Year), car.Description}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("#", "Brand", "Model", "Year", "Description").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	return t.Render()
}
