package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/allocation --output domain/allocation --outpkg allocationmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/performance --output domain/performance --outpkg performancemock --filename repository_mock.go
