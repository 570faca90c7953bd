package cli

// usageText — справка -H/--help. Печатается в stdout, после чего
// действие не выполняется.
const usageText = `usage: ots [flags] [action] [name=value ...] [-- secret text ...]

Share a secret that can be retrieved exactly once.

Flags:
  -h, --host URL      server URL (default https://onetimesecret.com, env OTS_HOST)
  -u, --user NAME     account username (env OTS_USER)
  -k, --key APIKEY    account API key (env OTS_KEY)
  -f, --format MODE   output mode: json | yaml | raw | fmt:TEMPLATE (env OTS_FORMAT)
  -s, --secret VALUE  secret value, repeatable (values are joined with spaces)
  -D, --debug         dry run: log the request instead of sending it
  -H, --help          print this help and exit
  -V, --version       print the client version and exit

Actions (default: share):
  share               create a secret, print its shareable URL
  metashare           create a secret, print its private metadata URL
  generate            let the server generate a short random secret
  metagenerate        generate, print the private metadata URL
  get|retrieve KEY    fetch a secret value once (KEY or full secret URL)
  metadata MKEY       print secret metadata
  state MKEY          print secret state (new, received, burned, ...)
  burn MKEY           destroy a secret before it is retrieved
  recent              list recent metadata keys (requires -u and -k)
  key|secret_key MKEY print the secret key for a metadata key
  url MKEY            print the shareable URL for a metadata key
  metaurl MKEY        print the private metadata URL (no request)

Any name=value argument is forwarded verbatim to the server as a form
field (ttl=300, passphrase=..., recipient=...). Bare json, yaml and raw
select the output mode. With no secret given, share reads stdin to EOF.
Everything after "--" is secret text, never parsed as flags.

Examples:
  ots -- my secret text
  echo "hunter2" | ots ttl=3600
  ots generate passphrase=tail
  ots get https://onetimesecret.com/secret/abc123
  ots -u me@example.com -k KEY recent
`
