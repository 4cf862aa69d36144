package recommend

// Package recommend produces the "you may also like" suggestions. A Client
// asks an OpenAI-compatible chat-completions API for up to three catalog
// products that complement the cart and recently viewed items; a Refresher
// debounces those requests and discards responses that arrive after a newer
// request has superseded them. Failures never reach the user: they degrade
// to an empty suggestion list.
