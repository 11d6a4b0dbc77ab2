package main

import (
	"github.com/shouni/go-fashion-kit/cmd"
)

// main はアプリケーションの唯一のエントリーポイントなのだ！
func main() {
	cmd.Execute()
}
