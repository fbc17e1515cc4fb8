// Package fakebackend simulates the accounts REST API.
//
// Router holds an ordered route table over an account store. It can be
// used in-process through Interceptor, an http.RoundTripper that answers
// matching requests itself after a fixed delay and forwards everything else
// to the next transport, or mounted on a real listener as an http.Handler.
//
// Routes:
//
//	POST   .../accounts/authenticate   exchange a provider token for a session
//	GET    .../accounts                list accounts (auth)
//	GET    .../accounts/{id}           get one account (auth)
//	PUT    .../accounts/{id}           merge fields into an account (auth)
//	DELETE .../accounts/{id}           delete an account (auth)
//
// A missing id is not an error: get and update answer 200 with an empty
// body.
package fakebackend
