// Package cmd wires the command-line surface of searchcloud.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/searchcloud/searchcloud/internal/scanner"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var (
	flagRegex      bool
	flagIgnoreCase bool
	flagDir        string
	flagExt        string
	flagSave       string
	flagBuffer     bool
	flagVerbose    bool
	flagVersion    bool
)

// rootCmd represents the searchcloud command
var rootCmd = &cobra.Command{
	Use:   "searchcloud [flags] termo",
	Short: "Busca um termo em arquivos de um diretório",
	Long: `SearchCloud percorre um diretório recursivamente e reporta (ou salva)
as linhas que contêm o termo de busca.

O termo é tratado como texto literal por padrão; use --regex para
interpretá-lo como expressão regular.

Exemplos:
  searchcloud erro -d /var/log -e log
  searchcloud "TODO|FIXME" --regex -d ./src -e go
  searchcloud senha -i -s resultados.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagRegex, "regex", "r", false, "tratar o termo como expressão regular")
	rootCmd.Flags().BoolVarP(&flagIgnoreCase, "ignorecase", "i", false, "busca sem diferenciar maiúsculas de minúsculas")
	rootCmd.Flags().StringVarP(&flagDir, "diretorio", "d", ".", "diretório (ou arquivo) de busca")
	rootCmd.Flags().StringVarP(&flagExt, "extensao", "e", "txt", "extensão dos arquivos a serem buscados")
	rootCmd.Flags().StringVarP(&flagSave, "salvar", "s", "", "salvar resultados em um arquivo")
	rootCmd.Flags().BoolVarP(&flagBuffer, "buffer", "b", false, "ler cada arquivo inteiro em memória")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verboso", "v", false, "modo de verbosidade")
	rootCmd.Flags().BoolVarP(&flagVersion, "versao", "V", false, "exibir a versão do programa")

	// Bind flags to viper so SEARCHCLOUD_* env vars can override them
	viper.BindPFlag("verboso", rootCmd.Flags().Lookup("verboso"))
	viper.BindPFlag("buffer", rootCmd.Flags().Lookup("buffer"))
	viper.SetEnvPrefix("SEARCHCLOUD")
	viper.AutomaticEnv()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "searchcloud %s\n", Version)
		return nil
	}

	cfg := Config{
		Term:       args[0],
		Regex:      flagRegex,
		IgnoreCase: flagIgnoreCase,
		Dir:        flagDir,
		Extension:  scanner.NormalizeExtension(flagExt),
		SavePath:   flagSave,
		Buffered:   viper.GetBool("buffer"),
		Verbose:    viper.GetBool("verboso"),
	}

	return Run(cfg, afero.NewOsFs(), os.Stdout, os.Stderr)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Erro: %v", err)))
		return err
	}
	return nil
}
