/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue_test

import (
	"fmt"

	"github.com/ARM-software/golang-queues/collection/queue"
)

func ExampleAdapter() {
	q := queue.NewAdapter[string](queue.NewArrayStorage[string](), queue.LIFOOrdering{})

	q.Enqueue("this is first string")
	fmt.Println(q.Enqueue("this is second string"))
	fmt.Println(q.Len())

	v, _ := q.Dequeue()
	fmt.Println(v)
	fmt.Println(q.List())
	fmt.Println(q.Len())

	// Output:
	// [this is first string this is second string]
	// 2
	// this is second string
	// [this is first string]
	// 1
}

func ExampleNewSparseFIFOQueue() {
	q := queue.NewSparseFIFOQueue[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	v, _ := q.Dequeue()
	fmt.Println(v)
	q.Enqueue("d")
	fmt.Println(q.List(), q.Len())

	// Output:
	// a
	// [b c d] 3
}
