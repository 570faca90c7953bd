package cli

// Version — версия сборки; задаётся через ldflags:
//
//	-ldflags "-X github.com/shaiso/ots/cli.Version=v1.2.3"
//
// Флаг -V/--version печатает её и завершает вызов, не выполняя
// действия — как --help.
var Version = "dev"
