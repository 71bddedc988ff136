package flow

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"github.com/m-mizutani/octosearch/pkg/utils/notify"
)

// SignIn runs the OAuth authorization code flow:
//
//	Idle -> AwaitingAuthorization -> ExchangingCode -> SignedIn
//
// with Failed reachable from the middle two states.
type SignIn struct {
	uc interfaces.UseCase

	mu     sync.Mutex
	cancel context.CancelFunc

	status   notify.Value[model.SignInStatus]
	token    notify.Value[types.AccessToken]
	loading  notify.Value[bool]
	messages notify.Event[string]
}

func NewSignIn(uc interfaces.UseCase) *SignIn {
	x := &SignIn{uc: uc}
	x.status.Set(model.SignInStatus{State: model.SignInIdle})
	x.loading.Set(false)
	return x
}

// Restore emits the stored token, if any, without network access. It returns true when signed in.
// Only a flow in Idle can be restored.
func (x *SignIn) Restore(ctx context.Context) (bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if state := x.state(); state != model.SignInIdle {
		return false, goerr.Wrap(types.ErrInvalidState, "sign-in flow is not idle", goerr.V("state", state))
	}

	cred, err := x.uc.LoadCredential(ctx)
	if err != nil {
		return false, err
	}
	if cred == nil || cred.Token == "" {
		return false, nil
	}

	x.status.Set(model.SignInStatus{State: model.SignInSignedIn})
	x.token.Set(cred.Token)
	return true, nil
}

// Start moves to AwaitingAuthorization and returns the URL the user has to open.
// It is rejected while a code is being exchanged.
func (x *SignIn) Start() (*url.URL, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.state() == model.SignInExchangingCode {
		return nil, goerr.Wrap(types.ErrInvalidState, "code exchange is in progress")
	}

	authURL := x.uc.AuthorizeURL()
	if authURL == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "OAuth client is not configured")
	}

	x.status.Set(model.SignInStatus{State: model.SignInAwaitingAuthorization})
	return authURL, nil
}

// HandleRedirect consumes the query of the OAuth callback URL and blocks until the
// code is exchanged. Canceling ctx or calling Close returns the flow to Idle silently.
func (x *SignIn) HandleRedirect(ctx context.Context, query url.Values) error {
	x.mu.Lock()
	if x.state() != model.SignInAwaitingAuthorization {
		state := x.state()
		x.mu.Unlock()
		return goerr.Wrap(types.ErrInvalidState, "not waiting for authorization", goerr.V("state", state))
	}

	if ghErr := query.Get("error"); ghErr != "" {
		err := goerr.Wrap(types.ErrAuth, "authorization was not granted",
			goerr.V("error", ghErr),
			goerr.V("error_description", query.Get("error_description")),
		)
		x.fail(err)
		x.mu.Unlock()
		return err
	}

	code := query.Get("code")
	if code == "" {
		err := goerr.Wrap(types.ErrMissingCode, "no code in redirect")
		x.fail(err)
		x.mu.Unlock()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	x.cancel = cancel
	x.status.Set(model.SignInStatus{State: model.SignInExchangingCode})
	x.loading.Set(true)
	x.mu.Unlock()

	cred, err := x.uc.SignIn(ctx, code)
	cancel()

	x.mu.Lock()
	defer x.mu.Unlock()
	x.cancel = nil
	x.loading.Set(false)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			logging.From(ctx).Debug("sign-in canceled")
			x.status.Set(model.SignInStatus{State: model.SignInIdle})
			return err
		}
		x.fail(err)
		return err
	}

	x.status.Set(model.SignInStatus{State: model.SignInSignedIn})
	x.token.Set(cred.Token)
	return nil
}

// fail must be called with mu held
func (x *SignIn) fail(err error) {
	msg := Message(err)
	x.status.Set(model.SignInStatus{State: model.SignInFailed, Message: msg})
	x.messages.Publish(msg)
}

// state must be called with mu held
func (x *SignIn) state() model.SignInState {
	v, _ := x.status.Get()
	return v.State
}

func (x *SignIn) Status() model.SignInStatus {
	v, _ := x.status.Get()
	return v
}

// Close cancels an in-flight code exchange
func (x *SignIn) Close() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.cancel != nil {
		x.cancel()
	}
}

func (x *SignIn) WatchState(ctx context.Context) <-chan model.SignInStatus {
	return x.status.Subscribe(ctx)
}

// WatchToken replays the current token. Nothing is sent until signed in.
func (x *SignIn) WatchToken(ctx context.Context) <-chan types.AccessToken {
	return x.token.Subscribe(ctx)
}

func (x *SignIn) WatchLoading(ctx context.Context) <-chan bool {
	return x.loading.Subscribe(ctx)
}

// Messages delivers failure messages published after the call, once each
func (x *SignIn) Messages(ctx context.Context) <-chan string {
	return x.messages.Subscribe(ctx)
}
