package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Directory --dir ../domain/player --output domain/player --outpkg playermock --filename directory_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StatsProvider --dir ../usecase --output ../usecase --inpackage --testonly --structname mockStatsProvider --filename mock_stats_provider_test.go
