package main

import (
	"fjacquet/txn-classify/cmd/classify"
	"fjacquet/txn-classify/cmd/review"
	"fjacquet/txn-classify/cmd/root"
	"fjacquet/txn-classify/cmd/train"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(train.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(review.Cmd)
}

func main() {
	root.Execute()
}
