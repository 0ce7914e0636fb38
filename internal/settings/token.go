package settings

// Messages of the settings tab
const (
	SavedTitle       = "Settings Saved"
	SavedBody        = "Your configuration has been updated."
	ErrorTitle       = "Error"
	SaveFailedBody   = "Failed to save settings."
	LoadFailedPrefix = "Failed to load settings: "
	ScriptCopied     = "Script Copied!"
	ScriptSteps      = "1. Go to music.apple.com\n2. Open Console (F12)\n3. Paste & Enter\n4. Copy tokens back here."
	ScriptCopyFailed = "Failed to copy script manually."
	TokenHelpTitle   = "Need Tokens?"
	TokenHelpBody    = "Copy this script, paste it into the Console (F12) on music.apple.com"
)

// TokenScript is pasted into the browser console on music.apple.com. It reads
// the signed-in MusicKit instance and shows both tokens with copy buttons.
const TokenScript = `(async () => {
  try {
    const mk = window.MusicKit && window.MusicKit.getInstance();
    if (!mk) throw new Error('MusicKit not found. Are you logged in?');
    const tokens = [
      ['Media User Token', mk.musicUserToken, 'Please sign in to Apple Music.'],
      ['Authorization Token', mk.developerToken, 'Refresh the page and try again.'],
    ];
    for (const [name, value, hint] of tokens) {
      if (!value) throw new Error(name + ' is empty. ' + hint);
    }
    document.getElementById('amd-token-popup')?.remove();
    const overlay = document.createElement('div');
    overlay.id = 'amd-token-popup';
    overlay.style.cssText = 'position:fixed;inset:0;background:rgba(0,0,0,.85);z-index:2147483647;display:flex;align-items:center;justify-content:center;font-family:sans-serif';
    const card = document.createElement('div');
    card.style.cssText = 'background:#1a1a1a;color:#fff;padding:28px;border-radius:16px;width:90%;max-width:500px';
    card.innerHTML = '<h2 style="margin:0 0 16px">AMD Tokens</h2>';
    for (const [name, value] of tokens) {
      const row = document.createElement('div');
      row.style.cssText = 'margin-bottom:16px';
      const label = document.createElement('label');
      label.textContent = name;
      label.style.cssText = 'display:block;font-size:12px;color:#888;margin-bottom:6px';
      const input = document.createElement('input');
      input.value = value;
      input.readOnly = true;
      input.style.cssText = 'width:70%;padding:10px;background:#2a2a2a;color:#ddd;border:1px solid #333;border-radius:8px';
      const btn = document.createElement('button');
      btn.textContent = 'COPY';
      btn.style.cssText = 'margin-left:8px;padding:10px 16px;background:#fa2d48;color:#fff;border:0;border-radius:8px;cursor:pointer';
      btn.onclick = async () => {
        try {
          await navigator.clipboard.writeText(value);
          btn.textContent = 'COPIED';
        } catch (e) {
          input.select();
          btn.textContent = document.execCommand('copy') ? 'COPIED' : 'FAILED';
        }
        setTimeout(() => { btn.textContent = 'COPY'; }, 2000);
      };
      row.append(label, input, btn);
      card.appendChild(row);
    }
    const close = document.createElement('button');
    close.textContent = 'CLOSE';
    close.style.cssText = 'width:100%;padding:14px;background:transparent;color:#888;border:1px solid #444;border-radius:10px;cursor:pointer';
    close.onclick = () => overlay.remove();
    card.appendChild(close);
    overlay.appendChild(card);
    document.body.appendChild(overlay);
  } catch (e) {
    console.error('AMD Token Error:', e);
    alert('Error: ' + e.message);
  }
})();
`
