package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/brandprofile --output domain/brandprofile --outpkg brandprofilemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/post --output domain/post --outpkg postmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Assistant --dir ../domain/post --output domain/post --outpkg postmock --filename assistant_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/pillar --output domain/pillar --outpkg pillarmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Authenticator --dir ../domain/user --output domain/user --outpkg usermock --filename authenticator_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PasswordRecovery --dir ../domain/user --output domain/user --outpkg usermock --filename password_recovery_mock.go
