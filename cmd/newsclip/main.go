package main

import "github.com/minafoods/newsclip/internal/logger"

func main() {
	logger.Init()
	Execute()
}
