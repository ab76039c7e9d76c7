package mocks

//go:generate mockgen -source=../publisher.go -destination=mock_writer.go -package=mocks
