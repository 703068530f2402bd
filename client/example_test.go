// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/client"
)

func ExampleConversation_Send() {
	// A stand-in for an Agent Zero instance.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":{"id":"task-1","context_id":"ctx-1","status":{"state":"completed"},"history":[{"role":"agent","parts":[{"kind":"text","text":"Hi!"}]}]}}`)
	}))
	defer srv.Close()

	conv, err := client.New(srv.URL, auth.PathToken{Token: "AB12CD34EF56GH78"})
	if err != nil {
		log.Fatal(err)
	}

	task, err := conv.Send(context.Background(), "Hello")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(fasta2a.ExtractResponseText(task))
	fmt.Println(task.Status.State)
	fmt.Println(conv.ContextID())
	// Output:
	// Hi!
	// completed
	// ctx-1
}

func ExampleConversation_Send_attachments() {
	conv, err := client.New("http://localhost:50001", auth.BearerHeader{Token: "AB12CD34EF56GH78"})
	if err != nil {
		log.Fatal(err)
	}

	task, err := conv.Send(context.Background(), "Summarize this report",
		client.WithAttachments(
			fasta2a.FileFromURI("https://example.com/report.pdf"),
			fasta2a.FileFromBytes("notes.txt", "text/plain", []byte("quarterly numbers")),
		),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(task.ResponseText())
}

func ExampleProbe() {
	results, err := client.Probe(context.Background(), "http://localhost:50001", "AB12CD34EF56GH78")
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		if r.OK() {
			fmt.Printf("%s: %s\n", r.Scheme, r.Card.Name)
		} else {
			fmt.Printf("%s: %v\n", r.Scheme, r.Err)
		}
	}
}
