//go:generate mockgen -source=../message_validator.go   -destination=./mock_message_validator.go   -package=mocks
//go:generate mockgen -source=../header_checker.go      -destination=./mock_header_checker.go      -package=mocks
//go:generate mockgen -source=../conformance_checker.go -destination=./mock_conformance_checker.go -package=mocks
//go:generate mockgen -source=../report_publisher.go    -destination=./mock_report_publisher.go    -package=mocks

package mocks
