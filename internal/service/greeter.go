package service

type GreeterService struct{}

func NewGreeterService() *GreeterService {
	return &GreeterService{}
}

func (GreeterService) Hello(name string) string {
	if name == "" {
		return "Hello, World!"
	}
	return "Hello, " + name + "!"
}

func (GreeterService) Ping() string {
	return "pong"
}
