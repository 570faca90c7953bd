// Ots — клиент командной строки сервиса одноразового обмена секретами.
//
// Использование:
//
//	ots [flags] [action] [name=value ...] [-- secret text ...]
//
// Действия:
//
//	share, metashare, generate, metagenerate, get, retrieve,
//	metadata, state, burn, recent, key, url, metaurl, status
//
// По умолчанию — share: секрет берётся из -s/--secret, позиционных
// аргументов или stdin, а в ответ печатается одноразовая ссылка.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/ots"
	"github.com/shaiso/ots/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ots [flags] [action] [name=value ...] [-- secret text ...]",
		Short:         "ots — one-time secret sharing client",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Разбор аргументов делает классификатор пакета cli: его
		// грамматика (действия без дефисов, name=value, секрет после
		// "--", нефатальные неизвестные флаги) не ложится на pflag.
		// Поэтому -H/--help и -V/--version тоже обрабатывает
		// классификатор, а не cobra.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd.Context(), ots.ConfigFromEnv(), args,
				os.Stdin, os.Stdout, os.Stderr)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
